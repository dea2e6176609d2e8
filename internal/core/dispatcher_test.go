package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name    string
	execErr error
	got     Command
}

func (f *fakeProvider) Name() string                   { return f.name }
func (f *fakeProvider) Init(ctx context.Context) error { return nil }
func (f *fakeProvider) Execute(ctx context.Context, cmd Command) (Response, error) {
	f.got = cmd
	if f.execErr != nil {
		return Response{}, f.execErr
	}
	return Response{Verb: cmd.Verb(), Data: json.RawMessage(`[]`)}, nil
}

func TestRegisterAndExecute(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	prov := &fakeProvider{name: ResourceProducts}
	require.NoError(t, r.Register(ctx, prov))

	resp, err := r.Execute(ctx, ListCommand{Name: ResourceProducts})
	require.NoError(t, err)
	assert.Equal(t, VerbList, resp.Verb)
	assert.Equal(t, ListCommand{Name: ResourceProducts}, prov.got)
}

func TestDuplicateProvider(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	prov := &fakeProvider{name: "dup"}
	require.NoError(t, r.Register(ctx, prov))
	require.Error(t, r.Register(ctx, prov))
}

func TestRegisterInvalidProvider(t *testing.T) {
	r := NewRegistry()
	err := r.Register(context.Background(), &fakeProvider{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidArguments))
}

func TestUnknownProvider(t *testing.T) {
	r := NewRegistry()
	_, err := r.Execute(context.Background(), GetCommand{Name: "users", ID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUnknownProvider))
}

func TestExecutePropagatesProviderError(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()
	boom := errors.New("boom")
	require.NoError(t, r.Register(ctx, &fakeProvider{name: ResourceProducts, execErr: boom}))

	_, err := r.Execute(ctx, DeleteCommand{Name: ResourceProducts, ID: 7})
	assert.ErrorIs(t, err, boom)
}
