package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyonekura/koibumi/internal/domain"
)

func TestCaptureStoreAppend(t *testing.T) {
	d := openTestDB(t)
	partners := NewPartnerStore(d)
	captures := NewCaptureStore(d)
	ctx := context.Background()
	now := time.Now()

	partner, err := partners.FindOrCreate(ctx, "user-1", "あやか", now)
	require.NoError(t, err)

	capture, err := captures.Append(ctx, partner.ID, domain.ScreenProfile, "カフェ巡りが好きです", now)
	require.NoError(t, err)
	assert.NotZero(t, capture.ID)
	assert.Equal(t, partner.ID, capture.PartnerID)
	assert.Equal(t, domain.ScreenProfile, capture.Kind)
	assert.Equal(t, "カフェ巡りが好きです", capture.RecognizedText)
}

func TestCaptureStoreListByPartnerFiltersKind(t *testing.T) {
	d := openTestDB(t)
	partners := NewPartnerStore(d)
	captures := NewCaptureStore(d)
	ctx := context.Background()
	now := time.Now()

	partner, err := partners.FindOrCreate(ctx, "user-1", "みさき", now)
	require.NoError(t, err)

	_, err = captures.Append(ctx, partner.ID, domain.ScreenProfile, "プロフィール", now)
	require.NoError(t, err)
	_, err = captures.Append(ctx, partner.ID, domain.ScreenDM, "こんにちは", now.Add(time.Minute))
	require.NoError(t, err)
	_, err = captures.Append(ctx, partner.ID, domain.ScreenDM, "元気?", now.Add(2*time.Minute))
	require.NoError(t, err)

	dms, err := captures.ListByPartner(ctx, partner.ID, domain.ScreenDM)
	require.NoError(t, err)
	require.Len(t, dms, 2)
	// Append order is preserved
	assert.Equal(t, "こんにちは", dms[0].RecognizedText)
	assert.Equal(t, "元気?", dms[1].RecognizedText)

	profiles, err := captures.ListByPartner(ctx, partner.ID, domain.ScreenProfile)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestCaptureStoreGetByIDMissing(t *testing.T) {
	d := openTestDB(t)
	captures := NewCaptureStore(d)

	capture, err := captures.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, capture)
}
