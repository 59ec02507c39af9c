package main

import (
	"fmt"
	"log"

	"linearcode/core"
)

func main() {
	log.Printf("🔑 Generating new webhook signing secret...")

	secret, err := core.NewSecretKey("lc")
	if err != nil {
		log.Fatalf("❌ Failed to generate secret: %v", err)
	}

	fmt.Printf("Generated webhook secret: %s\n", secret)
	log.Printf("✅ Set this as LINEAR_WEBHOOK_SECRET and in the Linear webhook settings")
}
