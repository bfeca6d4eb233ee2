package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/internal/subscription"
	"github.com/gaze-network/pokedex-nft/modules/pokedex"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePokemonIds(t *testing.T) {
	ids, err := parsePokemonIds([]string{"1", "25", "151"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 25, 151}, ids)

	for _, arg := range []string{"0", "-1", "pikachu", ""} {
		_, err := parsePokemonIds([]string{"1", arg})
		assert.True(t, errors.Is(err, errs.InvalidArgument), arg)
	}
}

func TestParseTokenId(t *testing.T) {
	tokenId, err := parseTokenId("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), tokenId.Int64())

	_, err = parseTokenId("-1")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewVersionCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, pokedex.Version+"\n", out.String())
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printJSON(&out, map[string]int{"total": 3}))
	assert.Equal(t, "{\n  \"total\": 3\n}\n", out.String())
}

func TestGenerateKeypairPrintsKey(t *testing.T) {
	var out bytes.Buffer
	cmd := NewGenerateKeypairCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Address: 0x")
	assert.Contains(t, out.String(), "Private key: 0x")
}

func TestGenerateKeypairKeystoreNeedsPassword(t *testing.T) {
	t.Setenv("POKEDEX_KEYSTORE_PASSWORD", "")
	cmd := NewGenerateKeypairCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--keystore", t.TempDir()})
	err := cmd.Execute()
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}

func TestPrintProgressFlushesFinalEvents(t *testing.T) {
	events := make(chan entity.StageEvent)
	progress := subscription.New(events)
	defer progress.Unsubscribe()

	var out bytes.Buffer
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		printProgress(&out, events, progress.Done())
	}()

	ctx := context.Background()
	for _, stage := range []entity.Stage{entity.StageFetching, entity.StageVerifying, entity.StageDone} {
		require.NoError(t, progress.Send(ctx, entity.StageEvent{PokemonId: 25, Stage: stage}))
	}
	progress.Close()
	<-printed

	assert.Equal(t, "#25 FETCHING\n#25 VERIFYING\n#25 DONE\n", out.String())
}
