package wellstore_test

import (
	"context"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/hazyhaar/wellpipe/wellparse"
	"github.com/hazyhaar/wellpipe/wellstore"
)

func TestScrapedInfoComplete(t *testing.T) {
	full := wellstore.ScrapedInfo{
		WellStatus: "Active", WellType: "Oil", ClosestCity: "Watford City",
		OilProduction: "120 BBL", GasProduction: "300 MCF",
	}
	if !full.Complete() {
		t.Error("fully populated info reported incomplete")
	}

	na := full
	na.GasProduction = "N/A"
	if na.Complete() {
		t.Error("info with N/A field reported complete")
	}

	empty := full
	empty.ClosestCity = ""
	if empty.Complete() {
		t.Error("info with empty field reported complete")
	}
}

func TestUpdateScrapedMissingWell(t *testing.T) {
	store := wellstore.OpenMemory(t)
	err := store.UpdateScraped(context.Background(), "99999", wellstore.ScrapedInfo{WellStatus: "Active"})
	if err == nil {
		t.Fatal("expected error for unknown well")
	}
}

func TestListUnscraped(t *testing.T) {
	store := wellstore.OpenMemory(t)
	ctx := context.Background()

	for _, no := range []string{"10", "20", "30"} {
		if err := store.UpsertWell(ctx, sampleWell(no)); err != nil {
			t.Fatal(err)
		}
	}
	// Well 20 is fully scraped, well 30 carries N/A placeholders.
	if err := store.UpdateScraped(ctx, "20", wellstore.ScrapedInfo{
		WellStatus: "Active", WellType: "Oil", ClosestCity: "Williston",
		OilProduction: "80 BBL", GasProduction: "150 MCF",
	}); err != nil {
		t.Fatal(err)
	}
	if err := store.UpdateScraped(ctx, "30", wellstore.ScrapedInfo{
		WellStatus: "Active", WellType: "N/A", ClosestCity: "Williston",
		OilProduction: "N/A", GasProduction: "N/A",
	}); err != nil {
		t.Fatal(err)
	}

	nos, err := store.ListUnscraped(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(nos) != 2 || nos[0] != "10" || nos[1] != "30" {
		t.Errorf("unscraped = %v, want [10 30]", nos)
	}
}

func TestListScrapeTargets(t *testing.T) {
	store := wellstore.OpenMemory(t)
	ctx := context.Background()

	withAPI := sampleWell("10")
	noAPI := sampleWell("20")
	noAPI.APINumber = ""
	naAPI := sampleWell("30")
	naAPI.APINumber = "n/a"
	for _, w := range []*wellparse.WellRecord{withAPI, noAPI, naAPI} {
		if err := store.UpsertWell(ctx, w); err != nil {
			t.Fatal(err)
		}
	}

	targets, err := store.ListScrapeTargets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 1 {
		t.Fatalf("targets = %+v, want only the well with a real API number", targets)
	}
	if targets[0].WellFileNo != "10" || targets[0].APINumber != "33-053-02102" {
		t.Errorf("target = %+v", targets[0])
	}

	// A fully scraped well drops out of the list.
	if err := store.UpdateScraped(ctx, "10", wellstore.ScrapedInfo{
		WellStatus: "Active", WellType: "Oil", ClosestCity: "Williston",
		OilProduction: "80 BBL", GasProduction: "150 MCF",
	}); err != nil {
		t.Fatal(err)
	}
	targets, err = store.ListScrapeTargets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 0 {
		t.Errorf("targets after full scrape = %+v, want none", targets)
	}
}
