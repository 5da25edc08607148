package main

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/location"
	"storefront/internal/usecase/impl"
)

func runFeed(ctx context.Context, pages int, denyLocation bool) error {
	env, err := newCLIEnv(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	platform := location.NewStaticPlatform(env.cfg.Location)
	if denyLocation {
		platform.PermissionGranted = false
	}

	controller := impl.NewPaginationController(impl.PaginationControllerParams{
		Locator:     location.NewResolver(platform, platform, env.logger),
		Credentials: env.accessor,
		Fetcher:     env.client,
		Logger:      env.logger,
	})

	unregister := controller.OnChange(printTransition)
	defer unregister()

	for range pages {
		controller.RequestNextPage(ctx)

		state := controller.State()
		if state.EndReached || state.RequiresLogin() {
			break
		}
	}

	printStores(controller.State().Accumulated)

	return nil
}

func printTransition(state entity.FeedState) {
	line := fmt.Sprintf("[%s] page=%d stores=%d", state.Status(), state.PageCursor, len(state.Accumulated))
	if state.LastError != entity.ErrorKindNone {
		line += " error=" + string(state.LastError)
	}
	if state.RequiresLogin() {
		line += " (run 'feedctl login')"
	}

	fmt.Println(line)
}

func printStores(stores []entity.StoreRecord) {
	for i, s := range stores {
		fmt.Printf("%3d. %-24s rating=%.1f price=%.0f distance=%.0fm\n", i+1, s.Name, s.RatingValue, s.AveragePrice, s.Distance)
	}
}
