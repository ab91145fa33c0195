package tagcmd

import (
	"context"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"

	"myceliumweb.org/tagrt/config"
	"myceliumweb.org/tagrt/driver"
	"myceliumweb.org/tagrt/heapimg"
	"myceliumweb.org/tagrt/imgstore"
)

// exit is replaced in tests.
var exit = os.Exit

var run = star.Command{
	Metadata: star.Metadata{
		Short: "run a heap image and print its result",
	},
	Flags: []star.IParam{fileParam, configParam},
	F: func(c star.Context) error {
		ctx, cfg, err := setup(c)
		if err != nil {
			return err
		}
		return runImage(ctx, cfg, c.StdOut, fileParam.Load(c))
	},
}

var runStored = star.Command{
	Metadata: star.Metadata{
		Short: "run an image from the store",
		Tags:  []string{"store"},
	},
	Flags: []star.IParam{dbParam, nameParam, configParam},
	F: func(c star.Context) error {
		ctx, cfg, err := setup(c)
		if err != nil {
			return err
		}
		img, err := loadStored(ctx, dbParam.Load(c), nameParam.Load(c))
		if err != nil {
			return err
		}
		return runImage(ctx, cfg, c.StdOut, img)
	},
}

// loadStored reads the image saved under name, then closes db.
func loadStored(ctx context.Context, db *sqlx.DB, name string) (*heapimg.Image, error) {
	defer db.Close()
	return imgstore.NewSQL(db).Get(ctx, name)
}

// runImage replays img and exits with the outcome's status if it is not StatusOK.
func runImage(ctx context.Context, cfg config.Config, out io.Writer, img *heapimg.Image) error {
	res, err := driver.Run(ctx, cfg.Driver(), out, img.Entry())
	if err != nil {
		return err
	}
	if res.Status != driver.StatusOK {
		logctx.Infof(ctx, "exiting with status %d", res.Status)
		exit(res.Status)
	}
	return nil
}
