package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

// newAttached returns a backend attached to a fresh temp dir with no delay.
func newAttached(t *testing.T) (*Backend, string) {
	t.Helper()

	dataDir := t.TempDir()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))
	t.Cleanup(func() { b.Detach() })
	return b, dataDir
}

// readRaw returns the stored JSON value directly from the database.
func readRaw(t *testing.T, b *Backend) string {
	t.Helper()

	var raw string
	require.NoError(t, b.db.QueryRow(selectValue, storeKey).Scan(&raw))
	return raw
}

func writeRaw(t *testing.T, b *Backend, value string) {
	t.Helper()

	_, err := b.db.Exec(upsertValue, storeKey, value)
	require.NoError(t, err)
}

func TestBackend_Attach(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(dataDir, dbFileName))
	assert.NoError(t, err, "vendors.db not created")

	assert.ErrorIs(t, b.Attach(types.Config{DataDir: dataDir}), types.ErrAlreadyAttached)
}

func TestBackend_AttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{DataDir: t.TempDir(), FetchDelay: -time.Second})
	assert.ErrorIs(t, err, types.ErrDelayNegative)
}

func TestBackend_Detach(t *testing.T) {
	b, _ := newAttached(t)

	require.NoError(t, b.Detach())
	assert.NoError(t, b.Detach(), "second Detach should not error")

	res := b.FetchAll(context.Background())
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, types.ErrDetached.Error())
}

func TestBackend_FetchAllSeedsEmptyStore(t *testing.T) {
	b, _ := newAttached(t)

	res := b.FetchAll(context.Background())
	require.True(t, res.Success, res.Error)
	assert.Equal(t, sampleVendors, res.Data)

	decoded, err := decodeVendors(readRaw(t, b))
	require.NoError(t, err)
	assert.Equal(t, sampleVendors, decoded, "seed must be persisted")
}

func TestBackend_FetchAllReseedsCorruptStore(t *testing.T) {
	for _, raw := range []string{"not json", "", "null", `{"CompanyName":"x"}`} {
		t.Run(raw, func(t *testing.T) {
			b, _ := newAttached(t)
			writeRaw(t, b, raw)

			res := b.FetchAll(context.Background())
			require.True(t, res.Success, res.Error)
			assert.Len(t, res.Data, len(sampleVendors))
		})
	}
}

func TestBackend_FetchAllKeepsEmptyList(t *testing.T) {
	b, _ := newAttached(t)
	writeRaw(t, b, "[]")

	res := b.FetchAll(context.Background())
	require.True(t, res.Success, res.Error)
	assert.Empty(t, res.Data)
}

func TestBackend_DataSurvivesReattach(t *testing.T) {
	dataDir := t.TempDir()
	ctx := context.Background()

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))
	require.True(t, b.Add(ctx, types.Vendor{CompanyName: "Durable"}).Success)
	require.NoError(t, b.Detach())

	b2 := NewBackend()
	require.NoError(t, b2.Attach(types.Config{DataDir: dataDir}))
	defer b2.Detach()

	res := b2.FetchAll(ctx)
	require.True(t, res.Success, res.Error)
	assert.Len(t, res.Data, len(sampleVendors)+1)
	assert.Equal(t, "Durable", res.Data[len(res.Data)-1].CompanyName)
}

func TestBackend_Add(t *testing.T) {
	b, _ := newAttached(t)
	ctx := context.Background()

	acme2 := types.Vendor{
		CompanyName:     "Acme2",
		BusinessType:    "Retailer",
		Products:        "Electronics",
		YearsInBusiness: 3,
		OnboardingDate:  "2025-01-01",
		AdditionalInfo:  "",
	}

	res := b.Add(ctx, acme2)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, acme2, res.Data)

	all := b.FetchAll(ctx)
	require.True(t, all.Success, all.Error)
	require.Len(t, all.Data, 6)
	assert.Contains(t, all.Data, acme2)
}

func TestBackend_AddAllowsDuplicates(t *testing.T) {
	b, _ := newAttached(t)
	ctx := context.Background()

	dup := types.Vendor{CompanyName: "Acme Electronics"}
	require.True(t, b.Add(ctx, dup).Success)

	all := b.FetchAll(ctx)
	require.True(t, all.Success)
	assert.Len(t, all.Data, 6)
}

func TestBackend_Update(t *testing.T) {
	b, _ := newAttached(t)
	ctx := context.Background()

	renamed := sampleVendors[0]
	renamed.CompanyName = "Acme Corp"
	renamed.YearsInBusiness = 16

	res := b.Update(ctx, "Acme Electronics", renamed)
	require.True(t, res.Success, res.Error)

	all := b.FetchAll(ctx).Data
	require.Len(t, all, len(sampleVendors))
	assert.Equal(t, renamed, all[0], "update keeps position")
	for _, v := range all {
		assert.NotEqual(t, "Acme Electronics", v.CompanyName)
	}
}

func TestBackend_UpdateNotFound(t *testing.T) {
	b, _ := newAttached(t)
	ctx := context.Background()

	b.FetchAll(ctx)
	before := readRaw(t, b)

	res := b.Update(ctx, "X", types.Vendor{CompanyName: "Y"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not found")
	assert.Equal(t, before, readRaw(t, b), "store must be unchanged")
}

func TestBackend_Delete(t *testing.T) {
	b, _ := newAttached(t)
	ctx := context.Background()

	res := b.Delete(ctx, "Fresh Foods Co")
	require.True(t, res.Success, res.Error)

	want := append(append([]types.Vendor{}, sampleVendors[:2]...), sampleVendors[3:]...)
	assert.Equal(t, want, b.FetchAll(ctx).Data)
}

func TestBackend_DeleteRemovesOnlyFirstMatch(t *testing.T) {
	b, _ := newAttached(t)
	ctx := context.Background()

	require.True(t, b.Add(ctx, types.Vendor{CompanyName: "ByteWorks", Products: "Software"}).Success)
	require.True(t, b.Delete(ctx, "ByteWorks").Success)

	all := b.FetchAll(ctx).Data
	require.Len(t, all, len(sampleVendors))
	assert.Equal(t, types.Vendor{CompanyName: "ByteWorks", Products: "Software"}, all[len(all)-1])
}

func TestBackend_DeleteNotFound(t *testing.T) {
	b, _ := newAttached(t)
	ctx := context.Background()

	b.FetchAll(ctx)
	before := readRaw(t, b)

	res := b.Delete(ctx, "Nobody")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not found")
	assert.Equal(t, before, readRaw(t, b))
}

func TestBackend_SimulatedLatency(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	b := NewBackend(WithClock(clk))
	require.NoError(t, b.Attach(types.Config{
		DataDir:       t.TempDir(),
		FetchDelay:    300 * time.Millisecond,
		MutationDelay: 500 * time.Millisecond,
	}))
	defer b.Detach()

	done := make(chan types.Result[types.Vendor], 1)
	go func() {
		done <- b.Add(context.Background(), types.Vendor{CompanyName: "Slow"})
	}()

	select {
	case <-done:
		t.Fatal("Add returned before the delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, clk.WaitAdvance(500*time.Millisecond, time.Second, 1))
	res := <-done
	assert.True(t, res.Success, res.Error)
}

func TestBackend_DelayHonorsContext(t *testing.T) {
	b := NewBackend(WithClock(testclock.NewClock(time.Now())))
	require.NoError(t, b.Attach(types.Config{DataDir: t.TempDir(), FetchDelay: time.Hour}))
	defer b.Detach()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := b.FetchAll(ctx)
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, context.Canceled.Error())
}

func TestBackend_StoreLayout(t *testing.T) {
	b, dataDir := newAttached(t)
	ctx := context.Background()
	b.FetchAll(ctx)
	require.NoError(t, b.Detach())

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&count))
	assert.Equal(t, 1, count, "one key holds the whole list")

	var raw string
	require.NoError(t, db.QueryRow(selectValue, storeKey).Scan(&raw))
	assert.Equal(t, byte('['), raw[0])
}
