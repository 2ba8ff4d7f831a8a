package repositories

import "github.com/fxamacker/cbor/v2"

// encMode keeps nanosecond precision on timestamps; the default CBOR
// time mode truncates to whole seconds, which would break the
// timestamp-ordered message keys.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
}

func marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}
