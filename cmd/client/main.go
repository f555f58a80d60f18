// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The node-api-and-auth Authors

// Command client runs a full API round trip against a live server:
// register, login, then create, list, get, update and delete an item.
// It is the command-line counterpart of the bundled tester page.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/givesachin/node-api-and-auth/internal/client"
	"github.com/givesachin/node-api-and-auth/models"
	"github.com/google/uuid"
)

func main() {
	var (
		baseURL  = flag.String("a", "http://localhost:36535", "base URL of the API server")
		username = flag.String("u", "", "username to register and log in with (random when empty)")
		password = flag.String("p", "secret", "password to register and log in with")
	)
	flag.Parse()

	if *username == "" {
		*username = "tester-" + uuid.NewString()[:8]
	}

	if err := run(*baseURL, *username, *password); err != nil {
		fmt.Fprintf(os.Stderr, "smoke run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("smoke run passed")
}

func run(baseURL, username, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cli := client.New(client.Config{BaseURL: baseURL})

	fmt.Printf("registering %q\n", username)
	if err := cli.Register(ctx, username, password); err != nil {
		// a rerun with the same username is fine, login decides
		if !errors.Is(err, client.ErrConflict) {
			return fmt.Errorf("register: %w", err)
		}
		fmt.Println("username already registered, continuing")
	}

	fmt.Println("logging in")
	if err := cli.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Println("creating item")
	created, err := cli.CreateItem(ctx, "smoke-item")
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	fmt.Printf("created item id=%d\n", created.ID)

	items, err := cli.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	fmt.Printf("listing contains %d item(s)\n", len(items))

	fetched, err := cli.GetItem(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if fetched != created {
		return fmt.Errorf("get item mismatch: got %+v, want %+v", fetched, created)
	}

	fmt.Println("updating item")
	updated, err := cli.UpdateItem(ctx, models.Item{ID: created.ID, Name: "smoke-item-renamed"})
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if updated.Name != "smoke-item-renamed" {
		return fmt.Errorf("update item mismatch: got %q", updated.Name)
	}

	fmt.Println("deleting item")
	deleted, err := cli.DeleteItem(ctx, created.ID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if deleted.ID != created.ID {
		return fmt.Errorf("delete item mismatch: got id=%d", deleted.ID)
	}

	if _, err = cli.GetItem(ctx, created.ID); !errors.Is(err, client.ErrNotFound) {
		return fmt.Errorf("deleted item still reachable: %v", err)
	}

	return nil
}
