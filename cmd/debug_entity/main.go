package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"hogger/core/config"
	"hogger/core/database"
	"hogger/core/reconcile"
	"hogger/feature/item"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Prints everything hogger knows about one managed entity: its identity
// record, the raw stored row and the entity decoded from it.
//
//	go run ./cmd/debug_entity Item "Recruit's Shirt"
func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <type> <identifier>", os.Args[0])
	}
	typeName, identifier := os.Args[1], os.Args[2]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	registry := reconcile.NewRegistry()
	if err := item.Register(registry); err != nil {
		log.Fatal(err)
	}
	code, typ, ok := registry.ByName(typeName)
	if !ok {
		log.Fatalf("unknown type %q", typeName)
	}
	ctx := context.Background()

	fmt.Println("=== Identity ===")
	if !reconcile.HasSchema(db) {
		fmt.Println("no identity table; nothing has been applied to this database")
		return
	}
	var rec reconcile.IdentityRecord
	err = db.WithContext(ctx).Where("type_code = ? AND identifier = ?", code, identifier).Limit(1).Find(&rec).Error
	if err != nil {
		log.Fatal(err)
	}
	if rec.Identifier == "" {
		fmt.Printf("%s.%s is not managed\n", typ.Name(), identifier)
		return
	}
	fmt.Printf("type_code=%d identifier=%q storage_key=%d\n", rec.TypeCode, rec.Identifier, rec.StorageKey)

	fmt.Println("\n=== Stored row ===")
	rows, err := database.QueryRows(ctx, db, fmt.Sprintf("SELECT * FROM `%s` WHERE `%s` = ?", typ.Table(), typ.KeyColumn()), rec.StorageKey)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d row(s) with %s = %d\n", len(rows), typ.KeyColumn(), rec.StorageKey)
	for _, row := range rows {
		cols := make([]string, 0, len(row))
		for col := range row {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			fmt.Printf("  %-28s %v\n", col, row[col])
		}
	}

	fmt.Println("\n=== Decoded ===")
	e, err := reconcile.NewSnapshotReader(db, registry, zap.NewNop()).Load(ctx, code, identifier, rec.StorageKey)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := yaml.Marshal(e)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(out))
}
