package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"myceliumweb.org/tagrt/config"
	"myceliumweb.org/tagrt/driver"
	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/heapimg"
	"myceliumweb.org/tagrt/imgstore"
	"myceliumweb.org/tagrt/internal/testutil"
	"myceliumweb.org/tagrt/rttests"
)

// TestStoredReplay saves every case in a database, reads them back through a Loader
// and runs them with a configuration read from disk.
func TestStoredReplay(t *testing.T) {
	ctx := testutil.Context(t)
	cfgPath := testutil.WriteFile(t, "tagrt.toml", []byte(`
[heap]
words = 512

[printer]
max-depth = 64

[log]
level = "debug"
`))
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	require.Equal(t, 512, cfg.Heap.Words)

	db := testutil.NewDB(t)
	require.NoError(t, imgstore.SetupDB(ctx, db))
	store := imgstore.NewSQL(db)

	cases := rttests.Cases()
	for _, tc := range cases {
		h := heap.New(cfg.Heap.Words)
		_, err := store.Put(ctx, tc.Name, heapimg.FromHeap(h, tc.Build(h)))
		require.NoError(t, err)
	}
	ents, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, ents, len(cases))

	loader := heapimg.NewLoader(len(cases))
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			img, err := store.Get(ctx, tc.Name)
			require.NoError(t, err)
			data, err := heapimg.Marshal(img)
			require.NoError(t, err)
			img, err = loader.Load(data)
			require.NoError(t, err)
			require.NoError(t, img.Check())

			buf := bytes.Buffer{}
			out, err := driver.Run(ctx, cfg.Driver(), &buf, img.Entry())
			require.NoError(t, err)
			require.Equal(t, driver.StatusOK, out.Status)
			require.Equal(t, tc.Stdout, buf.String())
		})
	}
}

// TestRaiseAfterOutput checks that output written before a raise is kept ahead of the error token.
func TestRaiseAfterOutput(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	out, err := driver.Run(ctx, config.Default().Driver(), &buf, func(rt *driver.Runtime) (rttests.Value, error) {
		if _, err := rt.Out().WriteString("partial "); err != nil {
			return 0, err
		}
		rt.Raise()
		panic("unreachable")
	})
	require.NoError(t, err)
	require.True(t, out.Raised)
	require.Equal(t, driver.StatusError, out.Status)
	require.Equal(t, "partial "+driver.ErrorToken, buf.String())
}
