package engine

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pack-calc/core/confidence"
	"pack-calc/core/contents"
	"pack-calc/core/crew"
	"pack-calc/core/debris"
	"pack-calc/core/determinism"
	"pack-calc/core/explanation"
	"pack-calc/core/floors"
	"pack-calc/core/input"
	"pack-calc/core/kb"
	"pack-calc/core/matcher"
	"pack-calc/core/protection"
	"pack-calc/core/types"
	"pack-calc/internal/errors"
	"pack-calc/internal/logging"
)

// Per-room logistics distribution factors: truck/storage handling time
// proportional to each room's share of boxes and items.
const (
	logisticsHoursPerBox  = 0.05
	logisticsHoursPerItem = 0.10

	// storageContainerFactor scales logistics when a portable storage
	// container is part of the aggregate materials
	storageContainerFactor = 1.2
)

// Options tunes the calculator
type Options struct {
	// ReviewThreshold flags calculations below this confidence (default 0.8)
	ReviewThreshold float64

	// SimilarityThreshold is passed through to the matcher
	SimilarityThreshold float64
}

// DefaultReviewThreshold is the reference needs-review gate
const DefaultReviewThreshold = 0.8

// Calculator is the calculation orchestrator. All per-call state is
// allocated fresh, so concurrent calculations need no coordination.
type Calculator struct {
	static    *kb.KnowledgeBase
	overrides OverrideSource
	repo      Repository
	estimator *contents.Estimator
	opts      Options
}

// NewCalculator creates a calculator. overrides may be nil when no
// operator override store is configured.
func NewCalculator(static *kb.KnowledgeBase, repo Repository, overrides OverrideSource, opts Options) *Calculator {
	if opts.ReviewThreshold <= 0 {
		opts.ReviewThreshold = DefaultReviewThreshold
	}
	return &Calculator{
		static:    static,
		overrides: overrides,
		repo:      repo,
		estimator: contents.NewEstimator(),
		opts:      opts,
	}
}

// Calculate runs a new calculation and persists the full aggregate
func (c *Calculator) Calculate(ctx context.Context, req *types.CalculationRequest) (*types.CalculationResult, error) {
	now := time.Now().UTC()
	calc := &types.Calculation{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	expl, err := c.compute(ctx, calc, req)
	if err != nil {
		return nil, err
	}

	if err := c.repo.CreateCalculation(ctx, calc); err != nil {
		return nil, errors.Storage("creating calculation", err)
	}

	return buildResult(calc, expl), nil
}

// Update recomputes an existing calculation idempotently: rooms and
// items are deleted and fully recreated before recomputation, so the
// same request always yields the same aggregate.
func (c *Calculator) Update(ctx context.Context, id string, req *types.CalculationRequest) (*types.CalculationResult, error) {
	existing, err := c.repo.GetCalculation(ctx, id)
	if err != nil {
		return nil, err
	}

	calc := &types.Calculation{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),

		// Correction state survives recomputation for audit purposes
		WasCorrected:        existing.WasCorrected,
		CorrectionMagnitude: existing.CorrectionMagnitude,
		CorrectedMaterials:  existing.CorrectedMaterials,
		CorrectedLabor:      existing.CorrectedLabor,
		CorrectionNotes:     existing.CorrectionNotes,
		ApprovedForTraining: existing.ApprovedForTraining,
	}

	expl, err := c.compute(ctx, calc, req)
	if err != nil {
		return nil, err
	}

	if err := c.repo.UpdateCalculation(ctx, calc); err != nil {
		return nil, errors.Storage("updating calculation", err)
	}

	return buildResult(calc, expl), nil
}

// Get rebuilds the result view of a stored calculation
func (c *Calculator) Get(ctx context.Context, id string) (*types.Calculation, error) {
	return c.repo.GetCalculation(ctx, id)
}

// compute fills calc from the request: the per-item resolution loop,
// aggregation, floor and crew scaling, protection, and debris.
func (c *Calculator) compute(ctx context.Context, calc *types.Calculation, req *types.CalculationRequest) ([]*explanation.RoomExplanation, error) {
	if err := input.Validate(req); err != nil {
		return nil, err
	}

	overrides, err := c.snapshotOverrides(ctx)
	if err != nil {
		return nil, err
	}
	view := kb.NewView(c.static, overrides)
	m := matcher.New(view, matcher.Options{SimilarityThreshold: c.opts.SimilarityThreshold})

	calc.Name = req.Name
	calc.Address = req.Address
	calc.Notes = req.Notes
	calc.BuildingType = req.BuildingType
	calc.HasElevator = req.HasElevator
	calc.FloorCount = deriveFloorCount(req)

	idgen := determinism.NewIDGenerator(calc.ID)
	tracker := confidence.NewTracker()

	projectMaterials := types.NewMaterialMap()
	var totalPacking, totalMovingDown, totalMovingUp, totalBoxes float64
	var totalItems int

	calc.Rooms = make([]types.Room, 0, len(req.Rooms))
	explanations := make([]*explanation.RoomExplanation, 0, len(req.Rooms))

	for i, roomInput := range req.Rooms {
		room := types.Room{
			ID:            string(idgen.Generate("room", roomInput.Name, strconv.Itoa(i))),
			CalculationID: calc.ID,
			Name:          roomInput.Name,
			FloorLevel:    roomInput.FloorLevel,
			InputMethod:   roomInput.InputMethod,
			Materials:     types.NewMaterialMap(),
		}
		roomExpl := explanation.NewRoomExplanation(roomInput.Name)

		for j, itemInput := range roomInput.Items {
			item := c.resolveItem(m, idgen, &room, itemInput, i, j, tracker, roomExpl)

			room.Materials.Merge(item.Materials)
			room.PackingHours += item.PackingHours
			room.MovingHours += item.MovingHours

			level := itemInput.FloorLevel
			if level == "" {
				level = roomInput.FloorLevel
			}
			totalMovingUp += item.MovingHours / floors.For(level).Down * floors.For(level).Up

			room.Items = append(room.Items, item)
		}

		for code, qty := range room.Materials {
			if kb.IsBoxCode(code) {
				room.BoxCount += qty
			}
		}

		projectMaterials.Merge(room.Materials)
		totalPacking += room.PackingHours
		totalMovingDown += room.MovingHours
		totalBoxes += room.BoxCount
		totalItems += len(room.Items)

		calc.Rooms = append(calc.Rooms, room)
		explanations = append(explanations, roomExpl)
	}

	// Logistics pass: distribute truck/storage handling time across
	// rooms proportional to their box and item counts
	storageFactor := 1.0
	if projectMaterials.Has(kb.CodeStorageContainer) {
		storageFactor = storageContainerFactor
	}
	var totalLogistics float64
	for i := range calc.Rooms {
		room := &calc.Rooms[i]
		fm := floors.For(room.FloorLevel)
		logistics := (room.BoxCount*logisticsHoursPerBox + float64(len(room.Items))*logisticsHoursPerItem) *
			fm.Down * storageFactor
		room.LogisticsHours = logistics
		totalLogistics += logistics

		boxShare := 0.0
		if totalBoxes > 0 {
			boxShare = room.BoxCount / totalBoxes
		}
		explanations[i].SetLogistics(logistics, boxShare)
	}

	packOutBase := totalPacking + totalMovingDown + totalLogistics

	calc.CrewSize = crew.Size(crew.Input{
		Requested:  req.CrewSize,
		TotalItems: totalItems,
		TotalBoxes: int(totalBoxes),
		BaseHours:  packOutBase,
		RoomCount:  len(calc.Rooms),
		FloorCount: calc.FloorCount,
	})

	calc.PackOutMaterials = projectMaterials
	calc.PackOutLabor = types.MaterialMap{
		kb.CodeLaborPack:      totalPacking,
		kb.CodeLaborMove:      totalMovingDown,
		kb.CodeLaborLogistics: totalLogistics,
	}
	calc.PackInLabor = types.MaterialMap{
		kb.CodeLaborMoveIn: totalMovingUp,
	}

	calc.TotalPackingHours = totalPacking
	calc.TotalMovingHours = totalMovingDown
	calc.TotalLogisticsHours = totalLogistics

	// Crew size scales reported wall-clock-equivalent hours
	calc.ReportedPackOutHours = packOutBase * float64(calc.CrewSize)
	calc.ReportedPackInHours = totalMovingUp * float64(calc.CrewSize)

	calc.Protection = protection.Compute(protection.Input{
		Building:    calc.BuildingType,
		FloorCount:  calc.FloorCount,
		HasElevator: calc.HasElevator,
	})
	calc.Debris = debris.Compute(calc.PackOutMaterials)

	calc.Confidence = tracker.Overall()
	calc.NeedsReview = tracker.NeedsReview(c.opts.ReviewThreshold)
	calc.Strategies = tracker.Axes()

	c.roundAggregates(calc)

	logging.Debug("calculation computed",
		zap.String("id", calc.ID),
		zap.Int("rooms", len(calc.Rooms)),
		zap.Int("items", totalItems),
		zap.Int("crew", calc.CrewSize),
		zap.Float64("confidence", calc.Confidence),
		zap.Bool("needs_review", calc.NeedsReview))

	return explanations, nil
}

// resolveItem turns one free-text inventory line into a resolved Item.
// Contents-tagged items go only through the contents estimator; plain
// items go through the matcher with wrapping consumables added for
// fragile goods, and unmatched items degrade to the default material set.
func (c *Calculator) resolveItem(m *matcher.Matcher, idgen *determinism.IDGenerator, room *types.Room,
	input types.ItemInput, roomIdx, itemIdx int, tracker *confidence.Tracker, roomExpl *explanation.RoomExplanation) types.Item {

	qty := input.Quantity
	if qty < 1 {
		qty = 1
	}

	level := input.FloorLevel
	if level == "" {
		level = room.FloorLevel
	}
	fm := floors.For(level)

	analysis := m.Analyze(input.Name)
	analysis.ApplyExplicit(input.Size, input.Category)

	item := types.Item{
		ID:                  string(idgen.Generate("item", strconv.Itoa(roomIdx), strconv.Itoa(itemIdx), input.Name)),
		RoomID:              room.ID,
		Name:                input.Name,
		Quantity:            qty,
		FloorLevel:          level,
		Fragile:             input.Fragile,
		RequiresDisassembly: input.RequiresDisassembly,
		Materials:           types.NewMaterialMap(),
	}

	itemExpl := &explanation.ItemExplanation{Name: input.Name, Quantity: qty}

	if analysis.ContentsTagged {
		est := c.estimator.Estimate(input.Name, analysis.Category)
		item.Materials.MergeScaled(est.LineItems, float64(qty))
		item.PackingHours = est.PackingHours * float64(qty)
		item.Category = analysis.Category
		item.Size = est.Size
		item.Confidence = est.Confidence

		tracker.Record(input.Name, confidence.StrategyContentsProfile, est.Confidence)
		itemExpl.Strategy = string(confidence.StrategyContentsProfile)
		itemExpl.Confidence = est.Confidence
		itemExpl.AddNote("%s", est.Reasoning)
	} else if match := m.MatchAnalysis(analysis); match != nil {
		item.Materials.MergeScaled(match.Mapping.Materials, float64(qty))
		item.PackingHours = match.Mapping.PackingHours * float64(qty)
		item.MovingHours = match.Mapping.MovingHours * float64(qty) * fm.Down
		item.ResolvedKey = match.Key
		item.Category = match.Mapping.Category
		item.Size = match.Mapping.Tier
		item.Confidence = match.Confidence
		if match.Mapping.Fragile {
			item.Fragile = true
		}
		if match.Mapping.RequiresDisassembly {
			item.RequiresDisassembly = true
		}

		fragile := item.Fragile || analysis.Fragile
		if fragile && !item.Materials.Has(kb.CodePackedWithLabor) {
			item.Materials.MergeScaled(wrappingFor(match.Mapping.Tier), float64(qty))
			itemExpl.AddNote("wrapping added for fragile item (%s)", match.Mapping.Tier)
		}

		strategy := confidence.StrategySeedData
		if match.Strategy == matcher.StrategySimilarity {
			strategy = confidence.StrategyFuzzyMatch
		}
		tracker.Record(input.Name, strategy, match.Confidence)
		itemExpl.ResolvedKey = match.Key
		itemExpl.Strategy = match.Strategy
		itemExpl.Confidence = match.Confidence
	} else {
		// No strategy matched: hard-coded default material set
		item.Materials.MergeScaled(fallbackMaterials(), float64(qty))
		item.PackingHours = fallbackPackingHours * float64(qty)
		item.MovingHours = fallbackMovingHours * float64(qty) * fm.Down
		item.Confidence = fallbackConfidence

		tracker.Record(input.Name, confidence.StrategyDefaultFallback, fallbackConfidence)
		itemExpl.Strategy = string(confidence.StrategyDefaultFallback)
		itemExpl.Confidence = fallbackConfidence
		itemExpl.AddNote("no knowledge-base match; default box and bubble wrap applied")

		logging.Warn("unmatched item, default materials applied",
			zap.String("item", input.Name))
	}

	itemExpl.PackingHours = item.PackingHours
	itemExpl.MovingHours = item.MovingHours
	roomExpl.AddItem(itemExpl)

	return item
}

func (c *Calculator) snapshotOverrides(ctx context.Context) (kb.Overrides, error) {
	if c.overrides == nil {
		return kb.Overrides{}, nil
	}
	overrides, err := c.overrides.Snapshot(ctx)
	if err != nil {
		return nil, errors.Storage("loading overrides", err)
	}
	return overrides, nil
}

// deriveFloorCount uses the request's explicit count, else the highest
// room floor level
func deriveFloorCount(req *types.CalculationRequest) int {
	if req.FloorCount > 0 {
		return req.FloorCount
	}
	count := 1
	for _, room := range req.Rooms {
		if o := room.FloorLevel.Ordinal(); o > count {
			count = o
		}
	}
	return count
}

func (c *Calculator) roundAggregates(calc *types.Calculation) {
	determinism.RoundMaterials(calc.PackOutMaterials)
	determinism.RoundMaterials(calc.PackOutLabor)
	determinism.RoundMaterials(calc.PackInLabor)
	determinism.RoundMaterials(calc.Protection)

	calc.TotalPackingHours = determinism.RoundHours(calc.TotalPackingHours)
	calc.TotalMovingHours = determinism.RoundHours(calc.TotalMovingHours)
	calc.TotalLogisticsHours = determinism.RoundHours(calc.TotalLogisticsHours)
	calc.ReportedPackOutHours = determinism.RoundHours(calc.ReportedPackOutHours)
	calc.ReportedPackInHours = determinism.RoundHours(calc.ReportedPackInHours)

	for i := range calc.Rooms {
		room := &calc.Rooms[i]
		determinism.RoundMaterials(room.Materials)
		room.PackingHours = determinism.RoundHours(room.PackingHours)
		room.MovingHours = determinism.RoundHours(room.MovingHours)
		room.LogisticsHours = determinism.RoundHours(room.LogisticsHours)
		for j := range room.Items {
			item := &room.Items[j]
			determinism.RoundMaterials(item.Materials)
			item.PackingHours = determinism.RoundHours(item.PackingHours)
			item.MovingHours = determinism.RoundHours(item.MovingHours)
		}
	}
}

