package main

import (
	"context"
	"fmt"

	"storefront/internal/usecase/impl"
)

func runCatalog(ctx context.Context, selectLabel string) error {
	env, err := newCLIEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		Credentials:    env.accessor,
		BannerSource:   env.client,
		CategorySource: env.client,
		Store:          env.store,
		Config:         env.cfg,
		Logger:         env.logger,
	})

	banners := catalog.LoadBanners(ctx)
	fmt.Printf("Banners (%d)", len(banners.Banners))
	if banners.LastError != "" {
		fmt.Printf(" error=%s", banners.LastError)
	}
	fmt.Println()
	for _, b := range banners.Banners {
		fmt.Printf("  %s %s\n", b.StoreID, b.ImageRef)
	}

	categories := catalog.LoadCategories(ctx)
	fmt.Printf("Categories (%d)", len(categories.Categories))
	if categories.LastError != "" {
		fmt.Printf(" error=%s", categories.LastError)
	}
	fmt.Println()
	for _, c := range categories.Categories {
		fmt.Printf("  %d %-8s %s\n", c.ConcernID, c.ShortLabel, c.Label)
	}

	if selectLabel == "" {
		return nil
	}

	if err := catalog.SelectCategory(ctx, selectLabel); err != nil {
		return err
	}
	fmt.Printf("Search keyword set to %q\n", selectLabel)

	return nil
}
