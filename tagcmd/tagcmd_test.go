package tagcmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"myceliumweb.org/tagrt/config"
	"myceliumweb.org/tagrt/driver"
	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/heapimg"
	"myceliumweb.org/tagrt/imgstore"
	"myceliumweb.org/tagrt/internal/cadata"
	"myceliumweb.org/tagrt/internal/testutil"
	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

func listImage(t testing.TB, xs ...int64) *heapimg.Image {
	h := heap.New(64)
	var vals []tagval.Value
	for _, x := range xs {
		vals = append(vals, tagval.FromInt(x))
	}
	l, err := h.List(vals...)
	require.NoError(t, err)
	return heapimg.FromHeap(h, l)
}

func writeImage(t testing.TB, name string, img *heapimg.Image) string {
	data, err := heapimg.Marshal(img)
	require.NoError(t, err)
	return testutil.WriteFile(t, name, data)
}

func TestRunImage(t *testing.T) {
	var status []int
	exit = func(code int) { status = append(status, code) }
	t.Cleanup(func() { exit = os.Exit })

	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	require.NoError(t, runImage(ctx, config.Default(), &buf, listImage(t, 1, 2)))
	require.Equal(t, "'(1 2)\n", buf.String())
	require.Empty(t, status)

	buf.Reset()
	img := listImage(t, 1)
	img.Raised = true
	require.NoError(t, runImage(ctx, config.Default(), &buf, img))
	require.Equal(t, driver.ErrorToken, buf.String())
	require.Equal(t, []int{driver.StatusError}, status)
}

func TestDescribe(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, describe(&buf, config.Default(), listImage(t, 7)))
	out := buf.String()
	require.Contains(t, out, "words:  2\n")
	require.Contains(t, out, "root:   Pair\n")
	require.Contains(t, out, "value:  '(7)\n")
	require.Contains(t, out, "00000000  ")

	buf.Reset()
	img := listImage(t, 7)
	img.Raised = true
	require.NoError(t, describe(&buf, config.Default(), img))
	require.Contains(t, buf.String(), "value:  err\n")
}

func TestCheckAll(t *testing.T) {
	good := writeImage(t, "good.img", listImage(t, 1, 2, 3))
	bad := listImage(t, 1)
	bad.Words[0] = uint64(tagval.PointerTo(spec.PairTag, 0x1000))
	badPath := writeImage(t, "bad.img", bad)
	garbage := testutil.WriteFile(t, "garbage.img", []byte("nope"))

	errs := checkAll([]string{good, badPath, garbage, good})
	require.Len(t, errs, 4)
	require.NoError(t, errs[0])
	require.Error(t, errs[1])
	require.Error(t, errs[2])
	require.NoError(t, errs[3])
}

func TestFormatEntry(t *testing.T) {
	ctx := testutil.Context(t)
	s := imgstore.NewMem()
	img := listImage(t, 1)
	ent, err := s.Put(ctx, "one", img)
	require.NoError(t, err)
	line := formatEntry(ent)
	require.Contains(t, line, "one\t"+ent.ID.String()+"\t")
}

func TestLoadStored(t *testing.T) {
	ctx := testutil.Context(t)
	db := testutil.NewDB(t)
	require.NoError(t, imgstore.SetupDB(ctx, db))
	_, err := imgstore.NewSQL(db).Put(ctx, "x", listImage(t, 4))
	require.NoError(t, err)

	img, err := loadStored(ctx, db, "x")
	require.NoError(t, err)
	require.Equal(t, listImage(t, 4).Words, img.Words)
	require.Error(t, db.Ping())
}

func TestFindByID(t *testing.T) {
	ctx := testutil.Context(t)
	s := imgstore.NewMem()
	for _, name := range []string{"a", "b"} {
		_, err := s.Put(ctx, name, listImage(t, 1))
		require.NoError(t, err)
	}
	other, err := s.Put(ctx, "c", listImage(t, 2))
	require.NoError(t, err)
	ents, err := s.List(ctx)
	require.NoError(t, err)

	id, err := cadata.ParseID(other.ID.String())
	require.NoError(t, err)
	found := findByID(ents, id)
	require.Len(t, found, 1)
	require.Equal(t, "c", found[0].Name)

	require.Len(t, findByID(ents, ents[0].ID), 2)
	require.Empty(t, findByID(ents, cadata.ID{}))
}

func TestCharTable(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, writeCharTable(&buf))
	require.Equal(t, "U+0000\t#\\nul\n", buf.String()[:len("U+0000\t#\\nul\n")])
	require.Contains(t, buf.String(), "U+0020\t#\\space\n")
	require.Equal(t, 9, bytes.Count(buf.Bytes(), []byte("\n")))
}
