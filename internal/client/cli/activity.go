package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avetrov/qaboard/internal/client/syncx"
)

func (a *App) listActivity(ctx context.Context) error {
	items, err := a.activities.List(ctx)
	if err != nil {
		log.Println(err.Error())
		items = a.activities.StateSnapshot().Items
	}

	for _, item := range items {
		fmt.Printf("  %s  %s (%s)\n", item.ID, item.Name, item.Status)
	}
	return nil
}

func (a *App) newActivity(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter activity name", os.Stdout)
	if err != nil {
		return err
	}

	payload, err := GetMetadata(a.reader)
	if err != nil {
		return err
	}

	suite := a.suites.ActiveItem()
	if suite != nil {
		payload["suite_id"] = suite.ID
	}

	created, err := a.activities.Create(ctx, syncx.Resource{Name: name, Payload: payload})
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Created activity %s (%s)\n", created.Name, created.ID)
	return nil
}

// attach requests a presigned upload URL for a resource so large artifacts
// (screenshots, logs) go straight to object storage.
func (a *App) attach(ctx context.Context, resourceID string) error {
	key, url, err := a.client.AttachmentPutURL(ctx, resourceID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Upload to:", url)
	fmt.Println("Storage key:", key)
	return nil
}

func (a *App) fetchAttachment(ctx context.Context) error {
	storageKey, err := getSimpleText(a.reader, "Enter storage key", os.Stdout)
	if err != nil {
		return err
	}

	url, err := a.client.AttachmentGetURL(ctx, storageKey)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Println("Download from:", url)
	return nil
}
