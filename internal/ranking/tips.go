package ranking

import "github.com/abhisek/urbanfarm/internal/crop"

// genericTips apply to any top recommendation without a crop-specific entry.
var genericTips = []string{
	"Research the crop's specific sunlight requirements before planting.",
	"Use well-draining soil enriched with organic matter.",
	"Water consistently based on the crop's needs.",
	"Monitor regularly for pests and diseases.",
	"Harvest at the right time for best yield and flavor.",
}

// cropTips holds growing guidance per supported crop.
var cropTips = map[crop.Label][]string{
	crop.Rice: {
		"Maintain standing water of 2-5 cm during the vegetative stage.",
		"Transplant seedlings at 20-25 days for stronger tillering.",
		"Drain the field one to two weeks before harvest.",
	},
	crop.Maize: {
		"Sow when soil temperature stays above 16 °C.",
		"Side-dress nitrogen when plants are knee-high.",
		"Keep rows weed-free for the first six weeks.",
	},
	crop.Pomegranate: {
		"Prune to three to five main trunks for airflow and light.",
		"Reduce irrigation as fruit ripens to prevent splitting.",
		"Harvest when the rind turns matte and sounds metallic when tapped.",
	},
	crop.Banana: {
		"Plant in wind-sheltered spots; leaves shred easily.",
		"Feed heavily with potassium during fruit development.",
		"Remove excess suckers, keeping one follower per mat.",
	},
	crop.Mango: {
		"Avoid irrigation during flowering to improve fruit set.",
		"Prune after harvest to keep the canopy open.",
		"Protect young trees from temperatures below 5 °C.",
	},
	crop.Apple: {
		"Ensure sufficient winter chill hours for your variety.",
		"Thin fruit clusters to one fruit per spur for size.",
		"Train branches to wide angles for strong scaffolds.",
	},
	crop.Orange: {
		"Water deeply but infrequently once established.",
		"Apply balanced citrus fertilizer three times a year.",
		"Watch for leaf miner damage on new flush growth.",
	},
	crop.Cotton: {
		"Plant into warm soil after the last frost date.",
		"Scout weekly for bollworm once squares form.",
		"Avoid late-season nitrogen to encourage boll maturity.",
	},
	crop.Jute: {
		"Sow densely and thin to encourage tall, straight stems.",
		"Harvest at early pod stage for the finest fiber.",
		"Ret stems in clean, slow-moving water for best quality.",
	},
	crop.Coffee: {
		"Grow under partial shade to slow cherry ripening.",
		"Mulch generously to hold soil moisture and suppress weeds.",
		"Pick only fully red cherries for even processing.",
	},
}

// TipsFor returns the growing tips for a crop, falling back to the generic
// list. The returned slice is a copy and safe to retain.
func TipsFor(l crop.Label) []string {
	tips, ok := cropTips[l]
	if !ok {
		tips = genericTips
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}
