package sqlite_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edesto/edesto/internal/history"
	"github.com/edesto/edesto/internal/testutil"
)

func TestSaveAssignsID(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	gen := history.NewGeneration("esp32", "esp32:esp32:esp32", "/dev/ttyUSB0", "abc123", []string{"CLAUDE.md", ".cursorrules"})
	require.Zero(t, gen.ID())

	require.NoError(t, repo.Save(gen))
	require.NotZero(t, gen.ID(), "Save should assign the database ID")
	require.NotEmpty(t, gen.GUID())
}

func TestFindByGUIDRoundTrip(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	gen := history.NewGeneration("arduino-uno", "arduino:avr:uno", "/dev/ttyACM0", "deadbeef", []string{"CLAUDE.md"})
	require.NoError(t, repo.Save(gen))

	found, err := repo.FindByGUID(gen.GUID())
	require.NoError(t, err)
	require.Equal(t, gen.ID(), found.ID())
	require.Equal(t, "arduino-uno", found.BoardSlug())
	require.Equal(t, "arduino:avr:uno", found.FQBN())
	require.Equal(t, "/dev/ttyACM0", found.Port())
	require.Equal(t, "deadbeef", found.Checksum())
	require.Equal(t, []string{"CLAUDE.md"}, found.Artifacts())
	require.WithinDuration(t, gen.CreatedAt(), found.CreatedAt(), time.Second)
}

func TestFindByGUIDNotFound(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	_, err := repo.FindByGUID("no-such-guid")
	require.Error(t, err)

	var notFound *history.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "no-such-guid", notFound.GUID)
}

func TestListNewestFirst(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	first := history.ReconstituteGeneration(0, "g-1", "esp32", "esp32:esp32:esp32", "/dev/ttyUSB0", "c1", nil, time.Now().Add(-2*time.Hour))
	second := history.ReconstituteGeneration(0, "g-2", "esp8266", "esp8266:esp8266:nodemcuv2", "/dev/ttyUSB1", "c2", nil, time.Now().Add(-time.Hour))
	third := history.ReconstituteGeneration(0, "g-3", "rp2040", "rp2040:rp2040:rpipico", "/dev/ttyACM0", "c3", nil, time.Now())

	for _, g := range []*history.Generation{first, second, third} {
		require.NoError(t, repo.Save(g))
	}

	all, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "g-3", all[0].GUID())
	require.Equal(t, "g-2", all[1].GUID())
	require.Equal(t, "g-1", all[2].GUID())

	limited, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, "g-3", limited[0].GUID())
}

func TestListEmpty(t *testing.T) {
	repo := testutil.NewTestRepo(t)

	all, err := repo.List(0)
	require.NoError(t, err)
	require.Empty(t, all)
}
