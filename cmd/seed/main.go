// Command seed resets the configured store and loads the demo dataset.
package main

import (
	"fmt"
	"os"

	"bookflow/internal/storage"
	"bookflow/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Could not build application factory: %v\n", err)
		os.Exit(1)
	}
	defer appFactory.Close()

	log := appFactory.GetLogger()
	store := appFactory.GetStore()

	if err := storage.Seed(store); err != nil {
		log.Fatal("Could not seed demo data", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Demo data loaded", map[string]interface{}{
		"books":      appFactory.GetBookRepository().Count(),
		"authors":    appFactory.GetAuthorRepository().Count(),
		"categories": appFactory.GetCategoryRepository().Count(),
		"members":    appFactory.GetMemberRepository().Count(),
		"loans":      appFactory.GetLoanRepository().Count(),
	})
}
