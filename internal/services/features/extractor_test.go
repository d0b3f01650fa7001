package features

import (
	"fmt"
	"reflect"
	"testing"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/config"
)

const (
	testAddr  = "0x1000000000000000000000000000000000000001"
	otherAddr = "0x2000000000000000000000000000000000000002"
	thirdAddr = "0x3000000000000000000000000000000000000003"
)

func testBook() *config.AddressBook {
	return config.NewAddressBook(nil, nil, nil, nil)
}

func eth(n int64) string {
	return fmt.Sprintf("%d000000000000000000", n)
}

func tx(from, to, value string, ts int64) models.TransactionRecord {
	return models.TransactionRecord{
		From:      from,
		To:        to,
		Value:     value,
		TimeStamp: fmt.Sprintf("%d", ts),
	}
}

func TestExtractEmptyInputCanonicalShape(t *testing.T) {
	e := New(testBook())
	got := e.Extract(testAddr, nil, nil)
	want := models.NewFeatureSummary(testAddr)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("empty input must yield canonical zero shape, got %+v", got)
	}
}

func TestExtractVolumeAndSymmetry(t *testing.T) {
	e := New(testBook())
	normal := []models.TransactionRecord{
		tx(otherAddr, testAddr, eth(4), 1000),
		tx(testAddr, otherAddr, eth(2), 2000),
	}
	fs := e.Extract(testAddr, normal, nil)

	if fs.TotalInETH != 4.0 || fs.TotalOutETH != 2.0 {
		t.Fatalf("unexpected totals in=%v out=%v", fs.TotalInETH, fs.TotalOutETH)
	}
	if fs.NetFlowETH != 2.0 {
		t.Fatalf("expected net flow 2, got %v", fs.NetFlowETH)
	}
	if fs.TotalVolumeETH != 6.0 {
		t.Fatalf("expected volume 6, got %v", fs.TotalVolumeETH)
	}
	if fs.InflowOutflowSymmetry != 0.5 {
		t.Fatalf("expected symmetry 0.5, got %v", fs.InflowOutflowSymmetry)
	}
	if fs.UniqueCounterparties != 1 {
		t.Fatalf("expected 1 counterparty, got %d", fs.UniqueCounterparties)
	}
}

func TestExtractRoundNumberTransfersOnlyLarge(t *testing.T) {
	e := New(testBook())
	normal := []models.TransactionRecord{
		tx(testAddr, otherAddr, eth(10), 1000), // large and round
		tx(testAddr, otherAddr, eth(5), 2000),  // round but under 10 ETH
		tx(testAddr, otherAddr, "10500000000000000000", 3000), // 10.5, large not round
	}
	fs := e.Extract(testAddr, normal, nil)
	if fs.LargeTransfersCount != 2 {
		t.Fatalf("expected 2 large transfers, got %d", fs.LargeTransfersCount)
	}
	if fs.RoundNumberTransfers != 1 {
		t.Fatalf("expected 1 round transfer, got %d", fs.RoundNumberTransfers)
	}
}

func TestExtractSameBlockRequiresThreeSends(t *testing.T) {
	e := New(testBook())
	two := []models.TransactionRecord{
		{From: testAddr, To: otherAddr, Value: eth(1), TimeStamp: "1000", BlockNumber: "100"},
		{From: testAddr, To: otherAddr, Value: eth(1), TimeStamp: "1001", BlockNumber: "100"},
	}
	fs := e.Extract(testAddr, two, nil)
	if fs.SameBlock3PlusCount != 0 {
		t.Fatalf("two sends in a block must not count, got %d", fs.SameBlock3PlusCount)
	}

	three := append(two, models.TransactionRecord{
		From: testAddr, To: thirdAddr, Value: eth(1), TimeStamp: "1002", BlockNumber: "100",
	})
	fs = e.Extract(testAddr, three, nil)
	if fs.SameBlock3PlusCount != 1 {
		t.Fatalf("three sends in a block must count once, got %d", fs.SameBlock3PlusCount)
	}
}

func TestExtractBurstScoreRequiresTwoWeeks(t *testing.T) {
	e := New(testBook())
	week := int64(7 * 86400)

	// Two bursts inside the same calendar week: no score.
	sameWeek := []models.TransactionRecord{
		tx(testAddr, otherAddr, eth(1), 1000),
		tx(testAddr, otherAddr, eth(1), 1100),
		tx(testAddr, otherAddr, eth(1), 1200),
		tx(testAddr, otherAddr, eth(1), 10000),
		tx(testAddr, otherAddr, eth(1), 10100),
		tx(testAddr, otherAddr, eth(1), 10200),
	}
	fs := e.Extract(testAddr, sameWeek, nil)
	if fs.BurstActivityScore != 0 {
		t.Fatalf("single-week bursts must not score, got %v", fs.BurstActivityScore)
	}

	// Same bursts spread over two weeks: 2 bursts * 0.2 = 0.4.
	twoWeeks := []models.TransactionRecord{
		tx(testAddr, otherAddr, eth(1), 1000),
		tx(testAddr, otherAddr, eth(1), 1100),
		tx(testAddr, otherAddr, eth(1), 1200),
		tx(testAddr, otherAddr, eth(1), week+1000),
		tx(testAddr, otherAddr, eth(1), week+1100),
		tx(testAddr, otherAddr, eth(1), week+1200),
	}
	fs = e.Extract(testAddr, twoWeeks, nil)
	if fs.BurstActivityScore != 0.4 {
		t.Fatalf("expected burst score 0.4, got %v", fs.BurstActivityScore)
	}
}

func TestExtractGasSpikeRatio(t *testing.T) {
	e := New(testBook())
	gp := func(gwei int64) string { return fmt.Sprintf("%d000000000", gwei) }
	normal := []models.TransactionRecord{
		{From: testAddr, To: otherAddr, Value: eth(1), TimeStamp: "1000", GasPrice: gp(20)},
		{From: testAddr, To: otherAddr, Value: eth(1), TimeStamp: "1001", GasPrice: gp(20)},
		{From: testAddr, To: otherAddr, Value: eth(1), TimeStamp: "1002", GasPrice: gp(20)},
		{From: testAddr, To: otherAddr, Value: eth(1), TimeStamp: "1003", GasPrice: gp(40)},
	}
	fs := e.Extract(testAddr, normal, nil)
	if fs.GasSpikeRatio != 0.25 {
		t.Fatalf("expected gas spike ratio 0.25, got %v", fs.GasSpikeRatio)
	}
}

func TestExtractCEXCounterpartyMetrics(t *testing.T) {
	cex := "0x3f5ce5fbfe3e9af3971dd833d26ba9b5c936f0be"
	book := config.NewAddressBook([]string{cex}, nil, nil, nil)
	e := New(book)
	normal := []models.TransactionRecord{
		tx(testAddr, cex, eth(3), 1000),
		tx(cex, testAddr, eth(1), 2000),
		tx(testAddr, otherAddr, eth(4), 3000),
	}
	fs := e.Extract(testAddr, normal, nil)
	if fs.CEXCounterpartyCount != 1 {
		t.Fatalf("expected 1 CEX counterparty, got %d", fs.CEXCounterpartyCount)
	}
	if fs.CEXVolumeShare != 0.5 {
		t.Fatalf("expected CEX volume share 0.5, got %v", fs.CEXVolumeShare)
	}
	if fs.CEXInteractionRatio != 0.667 {
		t.Fatalf("expected CEX interaction ratio 0.667, got %v", fs.CEXInteractionRatio)
	}
}

func TestExtractSubDayHistoryReportsZeroFrequency(t *testing.T) {
	e := New(testBook())
	// 120 sends one minute apart: a two-hour-old wallet. Dividing by
	// the raw fractional age would report well over a thousand txs per
	// day; frequency must stay 0 until a full day of history exists.
	normal := []models.TransactionRecord{}
	for i := 0; i < 120; i++ {
		normal = append(normal, tx(testAddr, otherAddr, eth(1), 1000+int64(i)*60))
	}
	fs := e.Extract(testAddr, normal, nil)
	if fs.WalletAgeDays != 0.08 {
		t.Fatalf("expected age 0.08 days, got %v", fs.WalletAgeDays)
	}
	if fs.AvgTxPerDay != 0 {
		t.Fatalf("sub-day history must report zero frequency, got %v", fs.AvgTxPerDay)
	}
}

func TestExtractFrequencyFromOneDayOn(t *testing.T) {
	e := New(testBook())
	day := int64(86400)
	normal := []models.TransactionRecord{
		tx(testAddr, otherAddr, eth(1), 1000),
		tx(testAddr, otherAddr, eth(1), 1000+day),
		tx(testAddr, otherAddr, eth(1), 1000+2*day),
	}
	fs := e.Extract(testAddr, normal, nil)
	if fs.AvgTxPerDay != 1.5 {
		t.Fatalf("expected 3 txs over 2 days = 1.5/day, got %v", fs.AvgTxPerDay)
	}
}

func TestExtractRecentTxCountWindow(t *testing.T) {
	e := New(testBook())
	day := int64(86400)
	normal := []models.TransactionRecord{
		tx(testAddr, otherAddr, eth(1), 1000),
		tx(testAddr, otherAddr, eth(1), 1000+40*day),
		tx(testAddr, otherAddr, eth(1), 1000+75*day),
		tx(testAddr, otherAddr, eth(1), 1000+90*day),
	}
	fs := e.Extract(testAddr, normal, nil)
	// Window trails the last activity, not the clock: cutoff is 60d
	// after the first tx, so only the 75d and 90d entries count.
	if fs.RecentTxCount != 2 {
		t.Fatalf("expected 2 txs in the trailing 30 days, got %d", fs.RecentTxCount)
	}
}

func TestExtractMalformedNumericsCoerceToZero(t *testing.T) {
	e := New(testBook())
	normal := []models.TransactionRecord{
		{From: testAddr, To: otherAddr, Value: "garbage", TimeStamp: "notanumber"},
	}
	fs := e.Extract(testAddr, normal, nil)
	if fs.TotalTxs != 1 {
		t.Fatalf("malformed tx still counts toward totals, got %d", fs.TotalTxs)
	}
	if fs.TotalOutETH != 0 || fs.WalletAgeDays != 0 {
		t.Fatalf("malformed numerics must coerce to zero, out=%v age=%v", fs.TotalOutETH, fs.WalletAgeDays)
	}
}
