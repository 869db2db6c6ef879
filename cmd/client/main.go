package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/adrianliechti/tryon/pkg/client"
	"github.com/adrianliechti/tryon/pkg/provider"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")

	personFlag := flag.String("person", "", "person image file (jpeg or png)")
	garmentFlag := flag.String("garment", "", "garment image file (jpeg or png)")
	outputFlag := flag.String("output", "", "output file (defaults to the server-assigned name)")

	flag.Parse()

	if *personFlag == "" || *garmentFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	person, err := readFile(*personFlag)

	if err != nil {
		fatal(err)
	}

	garment, err := readFile(*garmentFlag)

	if err != nil {
		fatal(err)
	}

	c := client.New(*urlFlag)

	result, err := c.Tryons.New(ctx, client.TryonRequest{
		Person:  *person,
		Garment: *garment,
	})

	if err != nil {
		fatal(err)
	}

	output := *outputFlag

	if output == "" {
		output = result.Name
	}

	if output == "" {
		output = "tryon.png"
	}

	if err := os.WriteFile(output, result.Content, 0o644); err != nil {
		fatal(err)
	}

	fmt.Println(output)
}

func readFile(name string) (*provider.File, error) {
	data, err := os.ReadFile(name)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: filepath.Base(name),

		Content:     data,
		ContentType: mime.TypeByExtension(path.Ext(name)),
	}, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
