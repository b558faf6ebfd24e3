// ABOUTME: Basic example showing adoption search and email checks with the CatBytes library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	catbytes "github.com/ipierette/catbytes-portfolio/lib"
)

func main() {
	// Example 1: Create a client; without keys search returns fallback links only
	client, err := catbytes.NewClient(
		catbytes.WithSearchAPIKey(os.Getenv("SERPAPI_KEY")),
		catbytes.WithQuietMode(),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Example 2: Search adoption listings
	fmt.Println("=== Adoption Search ===")
	result, err := client.FindCats(ctx, catbytes.Filters{Color: "preto", Location: "São Paulo"})
	if err != nil {
		log.Fatal("Search failed:", err)
	}
	fmt.Println(result.Message)
	for _, l := range result.Listings {
		fmt.Printf("- [%.2f %s] %s\n  %s\n", l.Score, l.ScoreSource, l.Title, l.URL)
	}
	if result.Meta.OnlyFallbacks {
		fmt.Println("(only generic search links were found)")
	}

	// Example 3: Validate a contact email
	fmt.Println("\n=== Email Validation ===")
	for _, address := range []string{"ana@gmial.com", "not-an-email", "ana@gmail.com"} {
		verdict, err := client.ValidateEmail(ctx, address)
		if err != nil {
			log.Printf("Validation failed: %v\n", err)
			continue
		}
		switch {
		case verdict.Valid:
			fmt.Printf("%s: ok\n", address)
		case verdict.Suggestion != "":
			fmt.Printf("%s: did you mean %s?\n", address, verdict.Suggestion)
		default:
			fmt.Printf("%s: rejected (%s)\n", address, verdict.Reason)
		}
	}

	// Example 4: Error handling; ad generation needs an AI provider
	fmt.Println("\n=== Error Handling ===")
	_, err = client.GenerateAd(ctx, "Gata tricolor de 2 anos, castrada")
	if catbytes.IsConfigurationError(err) {
		fmt.Println("No AI provider configured:", err)
	} else if err != nil {
		fmt.Println("Other error occurred:", err)
	}

	fmt.Println("\nDone!")
}
