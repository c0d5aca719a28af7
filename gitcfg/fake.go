package gitcfg

import "context"

type SetCall struct {
	Key, Value string
}

// Fake is an in-memory Bridge. Keys listed in Errs fail on Set without
// changing Values.
type Fake struct {
	Values map[string]string
	Calls  []SetCall
	Errs   map[string]error
}

func NewFake() *Fake {
	return &Fake{
		Values: make(map[string]string),
		Errs:   make(map[string]error),
	}
}

func (f *Fake) Get(_ context.Context, key string) string {
	if v, ok := f.Values[key]; ok {
		return v
	}
	return NotSet
}

func (f *Fake) Set(_ context.Context, key, value string) error {
	f.Calls = append(f.Calls, SetCall{Key: key, Value: value})

	if err := f.Errs[key]; err != nil {
		return err
	}

	f.Values[key] = value
	return nil
}
