// Command badger_inspect dumps the chat keyspace of a badger store for
// debugging. Records are CBOR maps keyed by field number, so the dump
// stays readable without importing every repository type.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "/tmp/duochat", "Path to badger DB")
	prefix := flag.String("prefix", "msg:", "Key prefix to scan (msg:, user:, thread:, friend:, freq:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Size", "Fields"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{key, recordType(key), fmt.Sprintf("%d B", len(v)), renderFields(v)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func recordType(key string) string {
	namespace, _, found := strings.Cut(key, ":")
	if !found {
		return "RAW"
	}
	return strings.ToUpper(namespace)
}

// renderFields decodes a keyasint CBOR map and prints its fields in
// field-number order. Index rows carry no payload and render empty.
func renderFields(v []byte) string {
	if len(v) == 0 {
		return "-"
	}
	var record map[int]any
	if err := cbor.Unmarshal(v, &record); err != nil {
		return fmt.Sprintf("unreadable: %v", err)
	}

	keys := make([]int, 0, len(record))
	for k := range record {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d=%v", k, record[k]))
	}
	return strings.Join(parts, " ")
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)
	return badger.Open(opts)
}
