package engine

import (
	"context"
	"math"
	"reflect"
	"testing"

	"pack-calc/adapters/storage"
	"pack-calc/core/kb"
	"pack-calc/core/types"
	"pack-calc/internal/errors"
)

func newTestCalculator() (*Calculator, *storage.MemoryStore) {
	store := storage.NewMemory()
	calc := NewCalculator(kb.Seed(), store, store, Options{})
	return calc, store
}

func bedroomRequest() *types.CalculationRequest {
	return &types.CalculationRequest{
		Name:         "Smith move",
		BuildingType: types.BuildingHouse,
		Rooms: []types.RoomInput{
			{
				Name:       "Bedroom",
				FloorLevel: types.FloorSecond,
				Items: []types.ItemInput{
					{Name: "Queen bed"},
					{Name: "2 nightstands"},
					{Name: "dresser + contents"},
				},
			},
			{
				Name:       "Living room",
				FloorLevel: types.FloorMain,
				Items: []types.ItemInput{
					{Name: "large sofa"},
					{Name: "flat screen tv"},
				},
			},
		},
	}
}

func TestCalculatePersistsTheFullAggregate(t *testing.T) {
	c, store := newTestCalculator()

	result, err := c.Calculate(context.Background(), bedroomRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CalculationID == "" {
		t.Fatal("expected a calculation ID")
	}

	stored, err := store.GetCalculation(context.Background(), result.CalculationID)
	if err != nil {
		t.Fatalf("stored calculation not found: %v", err)
	}
	if len(stored.Rooms) != 2 {
		t.Fatalf("expected 2 stored rooms, got %d", len(stored.Rooms))
	}
	if len(stored.Rooms[0].Items) != 3 {
		t.Errorf("expected 3 items in the bedroom, got %d", len(stored.Rooms[0].Items))
	}
	if stored.Confidence <= 0 || stored.Confidence > 1 {
		t.Errorf("confidence %v outside (0, 1]", stored.Confidence)
	}
	if stored.CrewSize < 2 {
		t.Errorf("crew size below minimum: %d", stored.CrewSize)
	}
	if !stored.PackOutLabor.Has(kb.CodeLaborPack) {
		t.Error("pack-out labor should carry the packing line")
	}
	if !stored.PackInLabor.Has(kb.CodeLaborMoveIn) {
		t.Error("pack-in labor should carry the move-in line")
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	c, store := newTestCalculator()
	ctx := context.Background()
	req := bedroomRequest()

	created, err := c.Calculate(ctx, req)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	id := created.CalculationID

	if _, err := c.Update(ctx, id, req); err != nil {
		t.Fatalf("first update: %v", err)
	}
	first, err := store.GetCalculation(ctx, id)
	if err != nil {
		t.Fatalf("get after first update: %v", err)
	}

	if _, err := c.Update(ctx, id, req); err != nil {
		t.Fatalf("second update: %v", err)
	}
	second, err := store.GetCalculation(ctx, id)
	if err != nil {
		t.Fatalf("get after second update: %v", err)
	}

	if !reflect.DeepEqual(first.PackOutMaterials, second.PackOutMaterials) {
		t.Error("pack-out materials differ between identical updates")
	}
	if !reflect.DeepEqual(first.PackOutLabor, second.PackOutLabor) {
		t.Error("pack-out labor differs between identical updates")
	}
	if first.Confidence != second.Confidence {
		t.Error("confidence differs between identical updates")
	}
	for i := range first.Rooms {
		if first.Rooms[i].ID != second.Rooms[i].ID {
			t.Errorf("room %d identity changed across updates", i)
		}
		for j := range first.Rooms[i].Items {
			if first.Rooms[i].Items[j].ID != second.Rooms[i].Items[j].ID {
				t.Errorf("item %d.%d identity changed across updates", i, j)
			}
		}
	}
	if !first.CreatedAt.Equal(second.CreatedAt) {
		t.Error("CreatedAt must survive updates")
	}
}

func TestUpdateMissingCalculationFails(t *testing.T) {
	c, _ := newTestCalculator()

	_, err := c.Update(context.Background(), "nope", bedroomRequest())
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUnmatchedItemGetsDefaultMaterials(t *testing.T) {
	c, store := newTestCalculator()

	result, err := c.Calculate(context.Background(), &types.CalculationRequest{
		BuildingType: types.BuildingApartment,
		Rooms: []types.RoomInput{
			{Name: "Garage", FloorLevel: types.FloorMain,
				Items: []types.ItemInput{{Name: "asdkjalksd"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := store.GetCalculation(context.Background(), result.CalculationID)
	item := stored.Rooms[0].Items[0]
	if item.Materials.Get(kb.CodeBoxMedium) != 1 {
		t.Errorf("expected 1 medium box, got %v", item.Materials.Get(kb.CodeBoxMedium))
	}
	if item.Materials.Get(kb.CodeBubbleWrap) != 10 {
		t.Errorf("expected 10 bubble wrap, got %v", item.Materials.Get(kb.CodeBubbleWrap))
	}
	if item.Confidence != 0.3 {
		t.Errorf("expected fallback confidence 0.3, got %v", item.Confidence)
	}
	if !stored.NeedsReview {
		t.Error("an all-fallback calculation must need review")
	}
}

func TestContentsItemsCarryNoWrapCodes(t *testing.T) {
	c, store := newTestCalculator()

	result, err := c.Calculate(context.Background(), &types.CalculationRequest{
		BuildingType: types.BuildingHouse,
		Rooms: []types.RoomInput{
			{Name: "Office", FloorLevel: types.FloorMain,
				Items: []types.ItemInput{{Name: "large bookshelf + contents"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := store.GetCalculation(context.Background(), result.CalculationID)
	item := stored.Rooms[0].Items[0]
	if len(item.Materials) == 0 {
		t.Fatal("contents item should carry boxes")
	}
	for code := range item.Materials {
		if kb.IsWrapCode(code) {
			t.Errorf("contents item carries wrap code %s", code)
		}
	}
	if item.MovingHours != 0 {
		t.Errorf("contents carry no moving hours, got %v", item.MovingHours)
	}
}

func TestPackingHoursNeverScaleWithFloors(t *testing.T) {
	ctx := context.Background()

	roomOn := func(level types.FloorLevel) *types.CalculationRequest {
		return &types.CalculationRequest{
			BuildingType: types.BuildingHouse,
			Rooms: []types.RoomInput{
				{Name: "Bedroom", FloorLevel: level,
					Items: []types.ItemInput{{Name: "full bed"}}},
			},
		}
	}

	cMain, _ := newTestCalculator()
	main, err := cMain.Calculate(ctx, roomOn(types.FloorMain))
	if err != nil {
		t.Fatalf("main: %v", err)
	}
	cThird, _ := newTestCalculator()
	third, err := cThird.Calculate(ctx, roomOn(types.FloorThird))
	if err != nil {
		t.Fatalf("third: %v", err)
	}

	if main.Rooms[0].PackingHours != third.Rooms[0].PackingHours {
		t.Errorf("packing hours scaled with floor: %v vs %v",
			main.Rooms[0].PackingHours, third.Rooms[0].PackingHours)
	}
	wantMoving := main.Rooms[0].MovingHours * 1.5
	if math.Abs(third.Rooms[0].MovingHours-wantMoving) > 0.01 {
		t.Errorf("expected third-floor moving %.2f, got %.2f",
			wantMoving, third.Rooms[0].MovingHours)
	}
}

func TestFloorCountDerivedFromRooms(t *testing.T) {
	c, store := newTestCalculator()

	result, err := c.Calculate(context.Background(), &types.CalculationRequest{
		BuildingType: types.BuildingTownhouse,
		Rooms: []types.RoomInput{
			{Name: "Basement", FloorLevel: types.FloorBasement,
				Items: []types.ItemInput{{Name: "rug"}}},
			{Name: "Bedroom", FloorLevel: types.FloorThird,
				Items: []types.ItemInput{{Name: "twin bed"}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := store.GetCalculation(context.Background(), result.CalculationID)
	if stored.FloorCount != 3 {
		t.Errorf("expected derived floor count 3, got %d", stored.FloorCount)
	}
}

func TestFragileItemsGetWrappingUnlessPackedWithLabor(t *testing.T) {
	c, store := newTestCalculator()
	ctx := context.Background()

	result, err := c.Calculate(ctx, &types.CalculationRequest{
		BuildingType: types.BuildingHouse,
		Rooms: []types.RoomInput{
			{Name: "Office", FloorLevel: types.FloorMain,
				Items: []types.ItemInput{
					{Name: "medium bookshelf", Fragile: true},
					{Name: "large mirror"},
				}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := store.GetCalculation(ctx, result.CalculationID)
	shelf := stored.Rooms[0].Items[0]
	if !shelf.Materials.Has(kb.CodeBubbleWrap) {
		t.Error("fragile bookshelf should get bubble wrap")
	}

	mirror := stored.Rooms[0].Items[1]
	if !mirror.Materials.Has(kb.CodePackedWithLabor) {
		t.Fatal("mirror should resolve to packed-with-labor")
	}
	if mirror.Materials.Has(kb.CodeBubbleWrap) {
		t.Error("packed-with-labor items must not get extra wrapping")
	}
}

func TestQuantityScalesMaterialsAndHours(t *testing.T) {
	c, store := newTestCalculator()
	ctx := context.Background()

	result, err := c.Calculate(ctx, &types.CalculationRequest{
		BuildingType: types.BuildingHouse,
		Rooms: []types.RoomInput{
			{Name: "Dining", FloorLevel: types.FloorMain,
				Items: []types.ItemInput{{Name: "chair", Quantity: 4}}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := store.GetCalculation(ctx, result.CalculationID)
	item := stored.Rooms[0].Items[0]
	single, _ := kb.Seed().Get(item.ResolvedKey)
	if math.Abs(item.PackingHours-single.PackingHours*4) > 0.001 {
		t.Errorf("expected packing hours x4, got %v", item.PackingHours)
	}
	for code, qty := range single.Materials {
		if item.Materials.Get(code) != qty*4 {
			t.Errorf("%s: expected %v, got %v", code, qty*4, item.Materials.Get(code))
		}
	}
}

func TestReportedHoursScaleWithCrew(t *testing.T) {
	c, _ := newTestCalculator()

	result, err := c.Calculate(context.Background(), bedroomRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := result.Rooms[0].PackingHours + result.Rooms[0].MovingHours + result.Rooms[0].LogisticsHours +
		result.Rooms[1].PackingHours + result.Rooms[1].MovingHours + result.Rooms[1].LogisticsHours
	want := base * float64(result.CrewSize)
	if math.Abs(result.PackOutHours-want) > 0.1 {
		t.Errorf("expected reported pack-out near %.2f, got %.2f", want, result.PackOutHours)
	}
}

func TestValidationErrorsSurfaceFromCalculate(t *testing.T) {
	c, _ := newTestCalculator()

	_, err := c.Calculate(context.Background(), &types.CalculationRequest{})
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected an input error, got %v", err)
	}
}
