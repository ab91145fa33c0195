// package tagcmd implements the tagrt command line tool.
package tagcmd

import (
	"context"
	"os"

	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/star"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"myceliumweb.org/tagrt/config"
	"myceliumweb.org/tagrt/heapimg"
	"myceliumweb.org/tagrt/imgstore"
	"myceliumweb.org/tagrt/internal/dbutil"
)

func Root() star.Command {
	return root
}

var root = star.NewDir(star.Metadata{
	Short: "run and inspect tagged-word heap images",
}, map[star.Symbol]star.Command{
	"run":        run,
	"run-stored": runStored,
	"inspect":    inspect,
	"check":      check,
	"store":      storeDir,
	"chars":      charsCmd,
})

// loader is shared by every command so repeated files are decoded once.
var loader = heapimg.NewLoader(64)

var configParam = star.Param[config.Config]{
	Name:    "config",
	Default: star.Ptr(config.DefaultPath),
	Parse:   config.Load,
}

var fileParam = star.Param[*heapimg.Image]{
	Name:  "f",
	Parse: loader.LoadFile,
}

var imagesParam = star.Param[string]{
	Name:     "image",
	Repeated: true,
	Parse:    star.ParseString,
}

var nameParam = star.Param[string]{
	Name:  "name",
	Parse: star.ParseString,
}

var dbParam = star.Param[*sqlx.DB]{
	Name:    "db",
	Default: star.Ptr("tagrt.db"),
	Parse: func(x string) (*sqlx.DB, error) {
		db, err := dbutil.Open(x)
		if err != nil {
			return nil, err
		}
		if err := imgstore.SetupDB(context.Background(), db); err != nil {
			return nil, err
		}
		return db, nil
	},
}

// setup loads the config and returns a context carrying a logger at the configured level.
func setup(c star.Context) (context.Context, config.Config, error) {
	cfg := configParam.Load(c)
	lvl, err := cfg.LogLevel()
	if err != nil {
		return c.Context, config.Config{}, err
	}
	l := newLogger(lvl)
	return logctx.NewContext(c.Context, l), cfg, nil
}

// newLogger logs to stderr so stdout only carries program output.
func newLogger(lvl zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	return zap.New(core)
}
