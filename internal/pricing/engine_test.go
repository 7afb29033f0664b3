package pricing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/theater-billing/internal/pricing"
	"github.com/noah-isme/theater-billing/internal/theater"
)

var (
	hamlet = theater.Play{Name: "Hamlet", Type: theater.Tragedy}
	asLike = theater.Play{Name: "As You Like It", Type: theater.Comedy}
)

func newEngine(t *testing.T) *pricing.Engine {
	t.Helper()
	engine, err := pricing.NewEngine(pricing.DefaultRates())
	require.NoError(t, err)
	return engine
}

func TestTragedyAmount(t *testing.T) {
	engine := newEngine(t)
	rates := engine.Rates

	for audience := 0; audience <= 100; audience++ {
		amount, err := engine.Amount(theater.Performance{PlayID: "hamlet", Audience: audience}, hamlet)
		require.NoError(t, err)
		want := rates.TragedyBase
		if audience > rates.TragedyThreshold {
			want += rates.TragedyOverPerPerson * pricing.Money(audience-rates.TragedyThreshold)
		}
		require.Equal(t, want, amount, "audience %d", audience)
	}

	amount, err := engine.Amount(theater.Performance{PlayID: "hamlet", Audience: 55}, hamlet)
	require.NoError(t, err)
	require.Equal(t, pricing.Money(65000), amount)
}

func TestComedyAmount(t *testing.T) {
	engine := newEngine(t)

	amount, err := engine.Amount(theater.Performance{PlayID: "as-like", Audience: 20}, asLike)
	require.NoError(t, err)
	require.Equal(t, pricing.Money(36000), amount)

	amount, err = engine.Amount(theater.Performance{PlayID: "as-like", Audience: 35}, asLike)
	require.NoError(t, err)
	// 30000 + 10000 + 500*15 + 300*35
	require.Equal(t, pricing.Money(58000), amount)

	amount, err = engine.Amount(theater.Performance{PlayID: "as-like", Audience: 0}, asLike)
	require.NoError(t, err)
	require.Equal(t, pricing.Money(30000), amount)
}

func TestAmountMonotonicInAudience(t *testing.T) {
	engine := newEngine(t)
	for _, play := range []theater.Play{hamlet, asLike} {
		var prev pricing.Money
		for audience := 0; audience <= 200; audience++ {
			amount, err := engine.Amount(theater.Performance{Audience: audience}, play)
			require.NoError(t, err)
			require.GreaterOrEqual(t, amount, prev, "%s audience %d", play.Type, audience)
			prev = amount
		}
	}
}

func TestAmountUnknownType(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.Amount(theater.Performance{Audience: 10}, theater.Play{Name: "Tartuffe", Type: "farce"})
	require.ErrorIs(t, err, theater.ErrUnknownPlayType)
	require.EqualError(t, err, "unknown type: farce")
}

func TestVolumeCredits(t *testing.T) {
	engine := newEngine(t)

	require.Equal(t, 25, engine.VolumeCredits(theater.Performance{Audience: 55}, hamlet))
	require.Equal(t, 0, engine.VolumeCredits(theater.Performance{Audience: 10}, hamlet))
	require.Equal(t, 4, engine.VolumeCredits(theater.Performance{Audience: 20}, asLike))
	// 35-30 + 35/5
	require.Equal(t, 12, engine.VolumeCredits(theater.Performance{Audience: 35}, asLike))

	for audience := 0; audience <= 100; audience++ {
		perf := theater.Performance{Audience: audience}
		tragedy := engine.VolumeCredits(perf, hamlet)
		comedy := engine.VolumeCredits(perf, asLike)
		require.GreaterOrEqual(t, tragedy, 0)
		require.GreaterOrEqual(t, comedy, tragedy)
	}
}

func TestVolumeCreditsZeroFactorEngine(t *testing.T) {
	var engine pricing.Engine

	require.NotPanics(t, func() {
		require.Equal(t, 0, engine.VolumeCredits(theater.Performance{Audience: 20}, asLike))
	})
	require.Equal(t, 20, engine.VolumeCredits(theater.Performance{Audience: 20}, hamlet))
}

func TestCustomRates(t *testing.T) {
	rates := pricing.DefaultRates()
	rates.TragedyBase = 1000
	rates.TragedyThreshold = 10
	rates.TragedyOverPerPerson = 100
	engine, err := pricing.NewEngine(rates)
	require.NoError(t, err)

	amount, err := engine.Amount(theater.Performance{Audience: 12}, hamlet)
	require.NoError(t, err)
	require.Equal(t, pricing.Money(1200), amount)
}

func TestNewEngineRejectsInvalidRates(t *testing.T) {
	rates := pricing.DefaultRates()
	rates.ComedyExtraVolumeFactor = 0
	_, err := pricing.NewEngine(rates)
	require.Error(t, err)

	rates = pricing.DefaultRates()
	rates.TragedyBase = -1
	_, err = pricing.NewEngine(rates)
	require.Error(t, err)
}

func TestLoadRates(t *testing.T) {
	rates, err := pricing.LoadRates(strings.NewReader("tragedy_base: 50000\ncomedy_extra_volume_factor: 10\n"))
	require.NoError(t, err)
	want := pricing.DefaultRates()
	want.TragedyBase = 50000
	want.ComedyExtraVolumeFactor = 10
	require.Equal(t, want, rates)

	rates, err = pricing.LoadRates(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, pricing.DefaultRates(), rates)

	_, err = pricing.LoadRates(strings.NewReader("tragedy_bse: 1\n"))
	require.Error(t, err)

	_, err = pricing.LoadRates(strings.NewReader("comedy_threshold: -5\n"))
	require.Error(t, err)
}

func TestLoadRatesFileEmptyPath(t *testing.T) {
	rates, err := pricing.LoadRatesFile("")
	require.NoError(t, err)
	require.Equal(t, pricing.DefaultRates(), rates)
}
