package tagcmd

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"go.brendoncarroll.net/star"
	"golang.org/x/sync/errgroup"

	"myceliumweb.org/tagrt/config"
	"myceliumweb.org/tagrt/driver"
	"myceliumweb.org/tagrt/heapimg"
)

var inspect = star.Command{
	Metadata: star.Metadata{
		Short: "describe a heap image",
	},
	Flags: []star.IParam{fileParam, configParam},
	F: func(c star.Context) error {
		_, cfg, err := setup(c)
		if err != nil {
			return err
		}
		return describe(c.StdOut, cfg, fileParam.Load(c))
	},
}

func describe(w io.Writer, cfg config.Config, img *heapimg.Image) error {
	id, err := img.ID()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "id:     %v\n", id)
	fmt.Fprintf(w, "base:   %#x\n", img.Base)
	fmt.Fprintf(w, "words:  %d\n", len(img.Words))
	fmt.Fprintf(w, "root:   %v\n", img.Root().Category())
	if img.Raised {
		fmt.Fprintf(w, "value:  %s", driver.ErrorToken)
	} else {
		sb := strings.Builder{}
		if err := cfg.Driver().Printer.PrintResult(&sb, img.Heap(), img.Root()); err != nil {
			fmt.Fprintf(w, "value:  <%v>\n", err)
		} else {
			fmt.Fprintf(w, "value:  %s\n", sb.String())
		}
	}
	var raw []byte
	for _, x := range img.Words {
		raw = binary.LittleEndian.AppendUint64(raw, x)
	}
	_, err = io.WriteString(w, hex.Dump(raw))
	return err
}

var check = star.Command{
	Metadata: star.Metadata{
		Short: "validate heap images",
	},
	Flags: []star.IParam{configParam},
	Pos:   []star.IParam{imagesParam},
	F: func(c star.Context) error {
		if _, _, err := setup(c); err != nil {
			return err
		}
		paths := imagesParam.LoadAll(c)
		errs := checkAll(paths)
		var failed int
		for i, p := range paths {
			if errs[i] != nil {
				failed++
				c.Printf("%s: FAIL %v\n", p, errs[i])
			} else {
				c.Printf("%s: OK\n", p)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d images failed", failed, len(paths))
		}
		return nil
	},
}

// checkAll loads and checks each image concurrently, returning one error per path.
func checkAll(paths []string) []error {
	errs := make([]error, len(paths))
	var eg errgroup.Group
	for i, p := range paths {
		i, p := i, p
		eg.Go(func() error {
			img, err := loader.LoadFile(p)
			if err == nil {
				err = img.Check()
			}
			errs[i] = err
			return nil
		})
	}
	eg.Wait()
	return errs
}
