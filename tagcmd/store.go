package tagcmd

import (
	"fmt"

	"go.brendoncarroll.net/exp/slices2"
	"go.brendoncarroll.net/star"

	"myceliumweb.org/tagrt/heapimg"
	"myceliumweb.org/tagrt/imgstore"
	"myceliumweb.org/tagrt/internal/cadata"
)

var storeDir = star.NewDir(star.Metadata{
	Short: "manage named images in a database",
}, map[star.Symbol]star.Command{
	"put":  storePut,
	"get":  storeGet,
	"list": storeList,
	"drop": storeDrop,
	"find": storeFind,
})

var storePut = star.Command{
	Metadata: star.Metadata{
		Short: "save an image under a name",
		Tags:  []string{"store"},
	},
	Flags: []star.IParam{dbParam, nameParam, fileParam},
	F: func(c star.Context) error {
		db := dbParam.Load(c)
		defer db.Close()
		s := imgstore.NewSQL(db)
		ent, err := s.Put(c, nameParam.Load(c), fileParam.Load(c))
		if err != nil {
			return err
		}
		c.Printf("%s %v\n", ent.Name, ent.ID)
		return nil
	},
}

var storeGet = star.Command{
	Metadata: star.Metadata{
		Short: "write a stored image to stdout",
		Tags:  []string{"store"},
	},
	Flags: []star.IParam{dbParam, nameParam},
	F: func(c star.Context) error {
		db := dbParam.Load(c)
		defer db.Close()
		s := imgstore.NewSQL(db)
		img, err := s.Get(c, nameParam.Load(c))
		if err != nil {
			return err
		}
		data, err := heapimg.Marshal(img)
		if err != nil {
			return err
		}
		_, err = c.StdOut.Write(data)
		return err
	},
}

var storeList = star.Command{
	Metadata: star.Metadata{
		Short: "list the stored images",
		Tags:  []string{"store"},
	},
	Flags: []star.IParam{dbParam},
	F: func(c star.Context) error {
		db := dbParam.Load(c)
		defer db.Close()
		s := imgstore.NewSQL(db)
		ents, err := s.List(c)
		if err != nil {
			return err
		}
		c.Printf("NAME\tID\tCREATED\n")
		for _, line := range slices2.Map(ents, formatEntry) {
			c.Printf("%s\n", line)
		}
		return nil
	},
}

var storeDrop = star.Command{
	Metadata: star.Metadata{
		Short: "remove a stored image",
		Tags:  []string{"store"},
	},
	Flags: []star.IParam{dbParam, nameParam},
	F: func(c star.Context) error {
		db := dbParam.Load(c)
		defer db.Close()
		s := imgstore.NewSQL(db)
		return s.Delete(c, nameParam.Load(c))
	},
}

var storeFind = star.Command{
	Metadata: star.Metadata{
		Short: "list the names an image ID is stored under",
		Tags:  []string{"store"},
	},
	Flags: []star.IParam{dbParam, idParam},
	F: func(c star.Context) error {
		db := dbParam.Load(c)
		defer db.Close()
		s := imgstore.NewSQL(db)
		ents, err := s.List(c)
		if err != nil {
			return err
		}
		id := idParam.Load(c)
		found := findByID(ents, id)
		if len(found) == 0 {
			return fmt.Errorf("no image with ID %v", id)
		}
		for _, line := range slices2.Map(found, formatEntry) {
			c.Printf("%s\n", line)
		}
		return nil
	},
}

var idParam = star.Param[cadata.ID]{
	Name:  "id",
	Parse: cadata.ParseID,
}

func findByID(ents []imgstore.Entry, id cadata.ID) (ret []imgstore.Entry) {
	for _, ent := range ents {
		if ent.ID.Equals(id) {
			ret = append(ret, ent)
		}
	}
	return ret
}

func formatEntry(ent imgstore.Entry) string {
	ts := ent.CreatedAt
	return fmt.Sprintf("%s\t%v\t%d.%09d", ent.Name, ent.ID, uint64(ts.Seconds), uint32(ts.Nanoseconds))
}
