package entities

// ListStatus is the lifecycle state of a shopping list.
//
// active <-> completed transitions are automatic (see Recompute); archived is
// only ever entered or left through an explicit request.
type ListStatus string

const (
	ListStatusActive    ListStatus = "active"
	ListStatusCompleted ListStatus = "completed"
	ListStatusArchived  ListStatus = "archived"
)

func (s ListStatus) Valid() bool {
	switch s {
	case ListStatusActive, ListStatusCompleted, ListStatusArchived:
		return true
	}
	return false
}

type ItemUnit string

const (
	UnitPiece  ItemUnit = "piece"
	UnitKg     ItemUnit = "kg"
	UnitGram   ItemUnit = "gram"
	UnitLiter  ItemUnit = "liter"
	UnitMl     ItemUnit = "ml"
	UnitPack   ItemUnit = "pack"
	UnitBox    ItemUnit = "box"
	UnitBottle ItemUnit = "bottle"
	UnitOther  ItemUnit = "other"
)

func (u ItemUnit) Valid() bool {
	switch u {
	case UnitPiece, UnitKg, UnitGram, UnitLiter, UnitMl, UnitPack, UnitBox, UnitBottle, UnitOther:
		return true
	}
	return false
}

type ItemCategory string

const (
	ItemCategoryGrocery      ItemCategory = "grocery"
	ItemCategoryDairy        ItemCategory = "dairy"
	ItemCategoryMeat         ItemCategory = "meat"
	ItemCategoryVegetables   ItemCategory = "vegetables"
	ItemCategoryFruits       ItemCategory = "fruits"
	ItemCategoryBeverages    ItemCategory = "beverages"
	ItemCategorySnacks       ItemCategory = "snacks"
	ItemCategoryHousehold    ItemCategory = "household"
	ItemCategoryPersonalCare ItemCategory = "personal_care"
	ItemCategoryOther        ItemCategory = "other"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case ItemCategoryGrocery, ItemCategoryDairy, ItemCategoryMeat, ItemCategoryVegetables, ItemCategoryFruits,
		ItemCategoryBeverages, ItemCategorySnacks, ItemCategoryHousehold, ItemCategoryPersonalCare, ItemCategoryOther:
		return true
	}
	return false
}

type ItemPriority string

const (
	PriorityLow    ItemPriority = "low"
	PriorityMedium ItemPriority = "medium"
	PriorityHigh   ItemPriority = "high"
)

func (p ItemPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ListColor is a display hint used by the clients.
type ListColor string

const (
	ColorBlue   ListColor = "blue"
	ColorGreen  ListColor = "green"
	ColorRed    ListColor = "red"
	ColorPurple ListColor = "purple"
	ColorOrange ListColor = "orange"
	ColorPink   ListColor = "pink"
	ColorGray   ListColor = "gray"
)

func (c ListColor) Valid() bool {
	switch c {
	case ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorOrange, ColorPink, ColorGray:
		return true
	}
	return false
}

type ListCategory string

const (
	ListCategoryWeekly  ListCategory = "weekly"
	ListCategoryMonthly ListCategory = "monthly"
	ListCategorySpecial ListCategory = "special"
	ListCategoryParty   ListCategory = "party"
	ListCategoryTravel  ListCategory = "travel"
	ListCategoryOther   ListCategory = "other"
)

func (c ListCategory) Valid() bool {
	switch c {
	case ListCategoryWeekly, ListCategoryMonthly, ListCategorySpecial, ListCategoryParty, ListCategoryTravel, ListCategoryOther:
		return true
	}
	return false
}

// BudgetStatus is derived on read. The zero value means no budget is set.
type BudgetStatus string

const (
	BudgetStatusNone             BudgetStatus = ""
	BudgetStatusWithinBudget     BudgetStatus = "within_budget"
	BudgetStatusApproachingLimit BudgetStatus = "approaching_limit"
	BudgetStatusOverBudget       BudgetStatus = "over_budget"
)
