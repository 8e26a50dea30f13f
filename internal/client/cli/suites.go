package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avetrov/qaboard/internal/client/syncx"
)

func (a *App) listSuites(ctx context.Context) error {
	items, err := a.suites.List(ctx)
	if err != nil {
		log.Println(err.Error())
		items = a.suites.StateSnapshot().Items
	}

	active := a.suites.ActiveItem()
	for _, item := range items {
		marker := "  "
		if active != nil && active.ID == item.ID {
			marker = "* "
		}
		fmt.Printf("%s%s  %s (%s)\n", marker, item.ID, item.Name, item.Status)
	}
	return nil
}

func (a *App) newSuite(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter suite name", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.suites.Create(ctx, syncx.Resource{Name: name})
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Created suite %s (%s), now active\n", created.Name, created.ID)
	return nil
}

func (a *App) useSuite(ctx context.Context, id string) error {
	if err := a.suites.SwitchActive(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}
	fmt.Println("Active suite:", id)
	return nil
}

func (a *App) refreshSuites(ctx context.Context) error {
	if err := a.suites.Refresh(ctx, syncx.FetchOptions{Force: true}); err != nil {
		log.Println(err.Error())
		return err
	}
	return a.listSuites(ctx)
}

func (a *App) showQuota(ctx context.Context) error {
	key := syncx.OwnerScope{Kind: syncx.ScopeIndividual, OwnerID: a.userID}.Key()
	q, err := a.client.Store("suite").GetQuota(ctx, key)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if q.MaxAllowed < 0 {
		fmt.Printf("Suites: %d used, unlimited plan\n", q.CurrentCount)
	} else {
		fmt.Printf("Suites: %d of %d used\n", q.CurrentCount, q.MaxAllowed)
	}
	return nil
}
