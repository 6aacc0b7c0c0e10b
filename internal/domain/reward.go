package domain

// RewardType identifies what a Reward grants
type RewardType string

// Reward is a resolved grant credited to a player.
// Exactly one of Points, Item or PackType is meaningful, selected by Type.
type Reward struct {
	Type        RewardType   `json:"type"`
	Points      int64        `json:"points,omitempty"`
	Item        *Item        `json:"item,omitempty"`
	PackType    string       `json:"pack_type,omitempty"`
	PackResults []DrawResult `json:"pack_results,omitempty"`
}

// PointsReward builds a currency reward.
func PointsReward(amount int64) Reward {
	return Reward{Type: RewardTypePoints, Points: amount}
}

// ItemReward builds a card reward.
func ItemReward(item Item) Reward {
	return Reward{Type: RewardTypeItem, Item: &item}
}
