package carsales

import (
	"verdict/pkg/engine"
	"verdict/pkg/facts"
	"verdict/pkg/rules"
)

// Action kinds emitted by the showroom chain.
const (
	ActionAskIntent          = "ask_intent"
	ActionDeclineSell        = "decline_sell"
	ActionAskBudget          = "ask_budget"
	ActionFetchInventory     = "fetch_inventory"
	ActionAskForAvailability = "ask_for_availability"
	ActionScheduleTestDrive  = "schedule_test_drive"
	ActionRecommend          = "recommend"
)

// Chain returns the showroom rules in priority order. Order is the
// documented contract, each step only becoming reachable once every earlier
// step's facts are settled:
//
//	1. ask_intent            nothing known about the customer yet
//	2. decline_sell          customer wants to sell (terminal)
//	3. ask_budget            buying, budget unknown
//	4. fetch_inventory       budget known, lot still empty
//	5. ask_for_availability  lot loaded, no visit time offered
//	6. schedule_test_drive   a workable slot and affordable cars exist
//	7. recommend             offered times don't work; pitch the cars anyway
//
// Every guard is also written out in full, so each rule stands on its own
// whatever the order. With a budget no car can meet, neither step 6 nor 7
// fires and the resolver reports no action.
func Chain() []rules.ActionRule {
	return []rules.ActionRule{
		{
			Name: ActionAskIntent,
			When: func(s *facts.Store) bool {
				_, known := CurrentIntent(s)
				return !known
			},
		},
		{
			Name: ActionDeclineSell,
			When: func(s *facts.Store) bool {
				intent, known := CurrentIntent(s)
				return known && intent == IntentSell
			},
		},
		{
			Name: ActionAskBudget,
			When: func(s *facts.Store) bool {
				_, known := CurrentBudget(s)
				return buying(s) && !known
			},
		},
		{
			Name: ActionFetchInventory,
			When: func(s *facts.Store) bool {
				_, known := CurrentBudget(s)
				return buying(s) && known && len(Cars(s)) == 0
			},
		},
		{
			Name: ActionAskForAvailability,
			When: func(s *facts.Store) bool {
				return buying(s) && len(Cars(s)) > 0 && len(Availabilities(s)) == 0
			},
		},
		{
			Name: ActionScheduleTestDrive,
			When: func(s *facts.Store) bool {
				return buying(s) && len(WorkableSlots(s)) > 0 && len(AffordableCars(s)) > 0
			},
			Fire: func(s *facts.Store) []rules.Action {
				var out []rules.Action
				for _, car := range AffordableCars(s) {
					for _, slot := range WorkableSlots(s) {
						out = append(out, rules.Action{
							Kind: ActionScheduleTestDrive,
							Args: []interface{}{car.ID, slot.Year, slot.Month, slot.Day, slot.Hour},
						})
					}
				}
				return out
			},
		},
		{
			Name: ActionRecommend,
			When: func(s *facts.Store) bool {
				return buying(s) && len(Availabilities(s)) > 0 &&
					len(WorkableSlots(s)) == 0 && len(AffordableCars(s)) > 0
			},
			Fire: func(s *facts.Store) []rules.Action {
				var out []rules.Action
				for _, car := range AffordableCars(s) {
					out = append(out, rules.Action{
						Kind: ActionRecommend,
						Args: []interface{}{car.ID, car.Price, car.Make, car.Model},
					})
				}
				return out
			},
		},
	}
}

// NewResolver builds a resolver over the showroom chain.
func NewResolver(opts ...engine.Option) (*engine.Resolver, error) {
	return engine.NewResolver(Chain(), opts...)
}

func buying(s *facts.Store) bool {
	intent, known := CurrentIntent(s)
	return known && intent == IntentBuy
}
