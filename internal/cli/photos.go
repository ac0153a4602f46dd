package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/kfitness/internal/common"
	"github.com/dmitrijs2005/kfitness/internal/models"
	"github.com/dmitrijs2005/kfitness/internal/photos"
)

// photoOwner returns the record whose photos a command works on.
func (a *App) photoOwner(ctx context.Context, args []string, want int) (models.User, []string, error) {
	id, rest, err := a.target(args, want)
	if err != nil {
		return models.User{}, nil, err
	}
	if err := a.session.Refresh(ctx); err != nil {
		return models.User{}, nil, err
	}
	u, err := a.session.User(id)
	if err != nil {
		return models.User{}, nil, err
	}
	return u, rest, nil
}

// Photos lists progress photos in upload order.
func (a *App) Photos(ctx context.Context, args []string) error {
	u, _, err := a.photoOwner(ctx, args, 0)
	if err != nil {
		return err
	}
	if len(u.ProgressPhotos) == 0 {
		fmt.Fprintln(a.out, "No progress photos yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tSIZE")
	for _, p := range u.ProgressPhotos {
		mime, data, err := photos.Decode(p.ImageDataURL)
		if err != nil {
			mime = "invalid"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.ID, p.Date.Local().Format("2006-01-02 15:04"), mime, len(data))
	}
	return tw.Flush()
}

// AddPhoto uploads an image file, dated now.
func (a *App) AddPhoto(ctx context.Context, args []string) error {
	u, rest, err := a.photoOwner(ctx, args, 1)
	if err != nil {
		return err
	}
	dataURL, err := photos.EncodeFile(rest[0])
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "photo encoded", "file", rest[0], "size", len(dataURL))

	updated, err := a.session.AddPhoto(ctx, u.ID, models.NewPhoto{
		Date:         a.now().UTC().Truncate(time.Millisecond),
		ImageDataURL: dataURL,
	})
	if err != nil {
		return err
	}
	p := updated.ProgressPhotos[len(updated.ProgressPhotos)-1]
	fmt.Fprintf(a.out, "Photo %s added.\n", p.ID)
	return nil
}

func (a *App) DeletePhoto(ctx context.Context, args []string) error {
	u, rest, err := a.photoOwner(ctx, args, 1)
	if err != nil {
		return err
	}
	if u.PhotoIndex(rest[0]) < 0 {
		return fmt.Errorf("photo %s: %w", rest[0], common.ErrorNotFound)
	}
	if _, err := a.session.DeletePhoto(ctx, u.ID, rest[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Photo %s deleted.\n", rest[0])
	return nil
}

// Export writes a stored photo to a file.
func (a *App) Export(ctx context.Context, args []string) error {
	u, rest, err := a.photoOwner(ctx, args, 2)
	if err != nil {
		return err
	}
	i := u.PhotoIndex(rest[0])
	if i < 0 {
		return fmt.Errorf("photo %s: %w", rest[0], common.ErrorNotFound)
	}
	if err := photos.DecodeToFile(u.ProgressPhotos[i].ImageDataURL, rest[1]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Photo %s written to %s.\n", rest[0], rest[1])
	return nil
}
