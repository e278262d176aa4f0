package goforce_test

import (
	"context"
	"fmt"
	"log"

	"github.com/goforce/goforce"
	"github.com/goforce/goforce/pkg/connection"
)

// ExampleNew connects with the standard P4PORT, P4USER and P4CLIENT
// environment variables and fetches a user spec.
func ExampleNew() {
	p4, err := goforce.New(connection.FromEnv())
	if err != nil {
		log.Fatal(err)
	}

	user, err := p4.User(context.Background(), "alice")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(user.Email)
}

// ExampleP4_Run uses the escape hatch for a command without a typed
// wrapper.
func ExampleP4_Run() {
	config := connection.NewConfig("ssl:p4.example.com:1666")
	config.User = "alice"

	p4, err := goforce.New(config)
	if err != nil {
		log.Fatal(err)
	}

	records, err := p4.Run(context.Background(), []string{"counter", "change"})
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range records {
		fmt.Println(r.Get("value").Text())
	}
}

// ExampleP4_Sync brings the whole client view up to date.
func ExampleP4_Sync() {
	p4, err := goforce.New(connection.FromEnv())
	if err != nil {
		log.Fatal(err)
	}

	synced, err := p4.Sync(context.Background(), []string{"//..."})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(synced), "files synced")
}
