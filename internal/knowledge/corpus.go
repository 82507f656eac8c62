package knowledge

import "strings"

// Document is an immutable corpus entry, constructed once at process start
type Document struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"` // "crops", "weather", "pest_control", "market_prices", "soil"
	Source   string `json:"source"`
}

var corpus = buildCorpus()

// All returns the process-wide read-only knowledge corpus.
// Callers must not mutate the returned slice.
func All() []Document {
	return corpus
}

// ByCategory returns every document whose category matches the tag,
// case-insensitive exact match. Unknown tags yield an empty slice.
func ByCategory(tag string) []Document {
	var matched []Document
	for _, doc := range corpus {
		if strings.EqualFold(doc.Category, tag) {
			matched = append(matched, doc)
		}
	}
	return matched
}

func buildCorpus() []Document {
	return []Document{
		// Crop Guidelines
		{
			Title: "Wheat Cultivation - Rabi Season",
			Content: "Wheat is a major rabi crop in India. Best sowing time is October to November. " +
				"Ideal soil temperature is 20-25°C. Requires 4-5 irrigations. Popular varieties: " +
				"HD-2967, PBW-343, DBW-17. Yield potential: 45-50 quintals per hectare with proper care.",
			Category: "crops",
			Source:   "ICAR Wheat Guidelines",
		},
		{
			Title: "Tomato Farming",
			Content: "Tomatoes can be grown year-round in most parts of India. Optimal temperature: 20-27°C. " +
				"Requires well-drained loamy soil with pH 6.0-7.0. Spacing: 60x45cm. Popular varieties: " +
				"Pusa Ruby, Arka Vikas. Common diseases: Early blight, late blight. Use drip irrigation.",
			Category: "crops",
			Source:   "TNAU Agritech Portal",
		},
		{
			Title: "Onion Cultivation",
			Content: "Onion is grown in Kharif (June-July), Late Kharif (Sept-Oct), and Rabi (Dec-Jan). " +
				"Requires sandy loam to clay loam soil. Popular varieties: Agrifound Dark Red, Pusa Red. " +
				"Harvest when 50% tops fall. Store in well-ventilated rooms. Avoid waterlogging.",
			Category: "crops",
			Source:   "NHRDF Guidelines",
		},
		{
			Title: "Rice Paddy Cultivation",
			Content: "Rice is the staple Kharif crop. Sowing: June-July with monsoon onset. Transplanting age: " +
				"21-25 days. Water management: 5cm standing water during vegetative stage. Popular varieties: " +
				"Swarna, IR-64, Pusa Basmati. Harvest at 80% grain maturity.",
			Category: "crops",
			Source:   "DRR Hyderabad",
		},

		// Weather Advisory
		{
			Title: "Monsoon Season Advisory",
			Content: "During monsoon (June-September), ensure proper field drainage. Avoid fertilizer application " +
				"during heavy rains. Watch for fungal diseases. Prepare for Kharif sowing. Check soil moisture " +
				"before irrigation. Use raised beds for vegetables to prevent waterlogging.",
			Category: "weather",
			Source:   "IMD Advisory",
		},
		{
			Title: "Winter Season Farming Tips",
			Content: "Winter (November-February) is ideal for Rabi crops. Protect crops from frost - use mulching " +
				"or smoke. Irrigate during evening to prevent frost damage. This season suits wheat, gram, " +
				"mustard, peas. Ensure timely sowing before December end.",
			Category: "weather",
			Source:   "IMD Advisory",
		},
		{
			Title: "Summer Season Advisory",
			Content: "Summer (March-May) requires frequent irrigation. Use mulching to retain soil moisture. " +
				"Suitable crops: Watermelon, muskmelon, cucumber, okra. Avoid mid-day irrigation. " +
				"Provide shade for nurseries. Watch for pest outbreaks in hot weather.",
			Category: "weather",
			Source:   "IMD Advisory",
		},

		// Pest Control
		{
			Title: "Aphid Control in Vegetables",
			Content: "Aphids are common pests in leafy vegetables and brassicas. Symptoms: curling leaves, " +
				"honeydew deposits. Control: Spray neem oil (5ml/L), or use yellow sticky traps. " +
				"Biological control: Release ladybird beetles. Avoid excessive nitrogen fertilization.",
			Category: "pest_control",
			Source:   "ICAR Pest Management",
		},
		{
			Title: "Stem Borer in Rice",
			Content: "Yellow stem borer causes 'dead heart' in vegetative stage and 'white ear' at panicle stage. " +
				"Control: Remove and destroy affected tillers. Use pheromone traps at 5/ha. Apply Cartap " +
				"hydrochloride 4G at 25kg/ha. Avoid late planting. Maintain field sanitation.",
			Category: "pest_control",
			Source:   "DRR Advisory",
		},
		{
			Title: "Fruit Fly in Vegetables",
			Content: "Fruit fly damages cucurbits (pumpkin, bitter gourd, cucumber). Maggots bore into fruits. " +
				"Control: Use cue-lure traps at 25/ha. Spray Spinosad 45SC at 0.3ml/L. Collect and destroy " +
				"fallen fruits. Apply neem cake in soil. Harvest at right maturity.",
			Category: "pest_control",
			Source:   "IIHR Bangalore",
		},

		// Market Prices (sample data - in a real deployment, fetch from an API)
		{
			Title: "Current Mandi Prices - Maharashtra",
			Content: "Today's wholesale prices (per quintal): Onion (Red): ₹1,800-2,200, Tomato: ₹1,500-1,800, " +
				"Potato: ₹1,200-1,500, Wheat: ₹2,200-2,400, Rice: ₹2,800-3,200, Soybean: ₹4,500-4,800. " +
				"Prices vary by mandi and quality grade.",
			Category: "market_prices",
			Source:   "AgriMarket Portal",
		},
		{
			Title: "MSP Rates 2024-25",
			Content: "Minimum Support Prices for major crops: Paddy (Common): ₹2,300/qtl, Wheat: ₹2,275/qtl, " +
				"Gram: ₹5,440/qtl, Mustard: ₹5,650/qtl, Cotton (Medium): ₹7,020/qtl. MSP ensures farmers " +
				"get minimum guaranteed price. Sell at government procurement centers.",
			Category: "market_prices",
			Source:   "Ministry of Agriculture",
		},

		// Soil Management
		{
			Title: "Soil Testing Importance",
			Content: "Soil testing should be done every 2-3 years. Collect samples from 0-15cm depth, 10-15 spots " +
				"per field. Test for N, P, K, pH, EC, organic carbon. Based on results, apply balanced fertilizers. " +
				"Avoid over-fertilization. Contact nearest Krishi Vigyan Kendra for testing.",
			Category: "soil",
			Source:   "Soil Health Card Scheme",
		},
		{
			Title: "Organic Matter Management",
			Content: "Maintain soil organic carbon above 0.5%. Add FYM at 10-15 tonnes/ha annually. Use green " +
				"manuring with dhaincha or sunhemp. Incorporate crop residues. Vermicompost is excellent for " +
				"improving soil structure. Avoid burning stubble.",
			Category: "soil",
			Source:   "ICAR Soil Science",
		},
	}
}
