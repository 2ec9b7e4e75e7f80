// cmd/tools/menu-importer/main.go
//
// menu-importer seeds the Redis document store with catalog and order-history
// fixtures, validating each document against its JSON schema before writing:
//
//	menu-importer menu   -file fixtures/menu.json
//	menu-importer orders -file fixtures/orders.json
//	menu-importer validate -file fixtures/menu.json -schema menu
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"menu-recommender/internal/common/config"
	"menu-recommender/internal/common/database"
	"menu-recommender/internal/common/validation"
)

func main() {
	menuCmd := flag.NewFlagSet("menu", flag.ExitOnError)
	ordersCmd := flag.NewFlagSet("orders", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	menuFile := menuCmd.String("file", "", "Path to the menu JSON document")
	menuKey := menuCmd.String("key", "menu", "Redis key to write the catalog to")
	menuAddr := menuCmd.String("redis", "localhost:6379", "Redis address")

	ordersFile := ordersCmd.String("file", "", "Path to the order-history JSON document")
	ordersKey := ordersCmd.String("key", "orders", "Redis hash to write per-user orders to")
	ordersAddr := ordersCmd.String("redis", "localhost:6379", "Redis address")

	validateFile := validateCmd.String("file", "", "Path to the JSON document")
	validateSchema := validateCmd.String("schema", "menu", "Schema to validate against (menu or orders)")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "menu":
		menuCmd.Parse(os.Args[2:])
		if *menuFile == "" {
			fmt.Println("Error: -file is required for menu.")
			menuCmd.Usage()
			os.Exit(1)
		}
		if err := importMenu(*menuFile, *menuAddr, *menuKey); err != nil {
			fmt.Printf("Error importing menu: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported menu from %s\n", *menuFile)

	case "orders":
		ordersCmd.Parse(os.Args[2:])
		if *ordersFile == "" {
			fmt.Println("Error: -file is required for orders.")
			ordersCmd.Usage()
			os.Exit(1)
		}
		if err := importOrders(*ordersFile, *ordersAddr, *ordersKey); err != nil {
			fmt.Printf("Error importing orders: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported orders from %s\n", *ordersFile)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if *validateFile == "" {
			fmt.Println("Error: -file is required for validate.")
			validateCmd.Usage()
			os.Exit(1)
		}
		if err := validateDocument(*validateFile, *validateSchema); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s is valid\n", *validateFile)

	default:
		help()
		os.Exit(1)
	}
}

func help() {
	fmt.Println("Usage: menu-importer <menu|orders|validate> [flags]")
}

func schemaFor(name string) (string, error) {
	switch name {
	case "menu":
		return validation.MenuDocumentSchema, nil
	case "orders":
		return validation.OrdersDocumentSchema, nil
	default:
		return "", fmt.Errorf("unknown schema %q", name)
	}
}

func readValidated(path, schemaName string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	schema, err := schemaFor(schemaName)
	if err != nil {
		return nil, err
	}
	result, err := validation.ValidateDocument(raw, schema)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		for _, verr := range result.Errors {
			fmt.Printf("  %s: %s\n", verr.Field, verr.Message)
		}
		return nil, fmt.Errorf("document does not match the %s schema", schemaName)
	}
	return raw, nil
}

func validateDocument(path, schemaName string) error {
	_, err := readValidated(path, schemaName)
	return err
}

func connect(addr string) (*database.RedisClient, error) {
	client, err := database.NewRedis(config.RedisConfig{Address: addr})
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func importMenu(path, addr, key string) error {
	raw, err := readValidated(path, "menu")
	if err != nil {
		return err
	}

	client, err := connect(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Set(ctx, key, string(raw), 0)
}

func importOrders(path, addr, key string) error {
	raw, err := readValidated(path, "orders")
	if err != nil {
		return err
	}

	var tree map[string]json.RawMessage
	if err := json.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("order document is not a JSON object: %w", err)
	}

	client, err := connect(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for userID, sub := range tree {
		if err := client.HSet(ctx, key, userID, string(sub)); err != nil {
			return fmt.Errorf("write orders for %s: %w", userID, err)
		}
	}
	return nil
}
