package imgstore

import (
	"context"
	"strings"

	"go.brendoncarroll.net/state"
	"go.brendoncarroll.net/state/kv"

	"myceliumweb.org/tagrt/heapimg"
)

var _ Store = &Mem{}

type memEntry struct {
	ent  Entry
	data []byte
}

// Mem is a Store held in memory.
type Mem struct {
	kv *kv.MemStore[string, memEntry]
}

func NewMem() *Mem {
	return &Mem{
		kv: kv.NewMemStore[string, memEntry](strings.Compare),
	}
}

func (s *Mem) Put(ctx context.Context, name string, img *heapimg.Image) (Entry, error) {
	ent, data, err := encode(name, img)
	if err != nil {
		return Entry{}, err
	}
	if err := s.kv.Put(ctx, name, memEntry{ent: ent, data: data}); err != nil {
		return Entry{}, err
	}
	return ent, nil
}

func (s *Mem) Get(ctx context.Context, name string) (*heapimg.Image, error) {
	me, err := s.get(ctx, name)
	if err != nil {
		return nil, err
	}
	return heapimg.Unmarshal(me.data)
}

func (s *Mem) List(ctx context.Context) (ret []Entry, _ error) {
	if err := kv.ForEach(ctx, s.kv, state.TotalSpan[string](), func(name string) error {
		me, err := s.get(ctx, name)
		if err != nil {
			return err
		}
		ret = append(ret, me.ent)
		return nil
	}); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Mem) Delete(ctx context.Context, name string) error {
	exists, err := s.kv.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound{Name: name}
	}
	return s.kv.Delete(ctx, name)
}

func (s *Mem) Len() int {
	return s.kv.Len()
}

func (s *Mem) get(ctx context.Context, name string) (memEntry, error) {
	me, err := kv.Get(ctx, s.kv, name)
	if err != nil {
		if state.IsErrNotFound[string](err) {
			return memEntry{}, ErrNotFound{Name: name}
		}
		return memEntry{}, err
	}
	return me, nil
}
