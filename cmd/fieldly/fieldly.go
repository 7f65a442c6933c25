package main

import (
	"fmt"
	"github.com/google/gops/agent"
	"github.com/viant/fieldly"
	"github.com/viant/fieldly/cmd"
	"log"
	"os"
)

func main() {
	go func() {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Fatal(err)
		}
	}()
	if err := cmd.RunApp(fieldly.Version, os.Args[1:]); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}
