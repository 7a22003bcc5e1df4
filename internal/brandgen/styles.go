// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brandgen

import "brandforge/internal/models"

// Style is a named bundle of vocabulary the generator draws from: name
// fragments, format strings, palettes, fonts, and tone words that produce
// thematically consistent output. Format strings use {brandName}, {idea}
// and {category} placeholders.
type Style struct {
	ID          string
	Name        string
	Description string

	NamePrefixes []string
	NameSuffixes []string

	HeadlineFormats    []string
	SubheadlineFormats []string
	CTAs               []string

	FeatureTitlePrefixes []string

	ColorPalettes [][3]string
	EmojiSets     []string
	BrandTones    []string
	FontPairings  []models.FontPairing

	LayoutStyle    string
	AnimationLevel string
}

// industryStyles maps an industry to the styles that suit it. Unknown
// industries fall back to "general", which allows every style.
var industryStyles = map[string][]string{
	"saas":      {"minimal-tech", "modern-sleek", "premium-corporate"},
	"ecommerce": {"fun-youthful", "modern-sleek", "premium-corporate"},
	"agency":    {"creative-bold", "premium-corporate", "modern-sleek"},
	"app":       {"minimal-tech", "fun-youthful", "modern-sleek"},
	"health":    {"eco-friendly", "modern-sleek", "premium-corporate"},
	"education": {"fun-youthful", "eco-friendly", "modern-sleek"},
	"food":      {"eco-friendly", "vintage-classic", "fun-youthful"},
	"tech":      {"minimal-tech", "modern-sleek", "creative-bold"},
}

// styleIDs lists every style, used for the "general" fallback.
var styleIDs = []string{
	"minimal-tech", "fun-youthful", "premium-corporate", "creative-bold",
	"eco-friendly", "modern-sleek", "vintage-classic",
}

// genericFeatureNouns are the title suffixes available to every style.
var genericFeatureNouns = []string{
	"Design", "Integration", "Analytics", "Management",
	"Security", "Automation", "Experience", "Collaboration",
	"Performance", "Solution",
}

// genericFeatureDescriptions apply to any industry; %s is the industry name.
var genericFeatureDescriptions = []string{
	"Our %s solution streamlines your workflow with intuitive design and powerful functionality.",
	"Gain valuable insights with comprehensive analytics tailored for %s.",
	"Seamlessly integrate with your existing %s tools and platforms.",
	"Customizable %s solutions that adapt to your unique needs.",
	"Save time and resources with our efficient %s management system.",
	"Enhanced security features protect your %s data at every level.",
	"Real-time updates keep you informed about your %s performance.",
	"Collaborative tools make %s teamwork smooth and productive.",
	"Mobile-friendly design lets you manage %s from anywhere.",
	"Scalable architecture grows with your %s needs.",
}

// industryFeatureDescriptions are preferred over the generic pool when the
// industry has its own entries; the generator cycles back to the generic
// pool once these run out.
var industryFeatureDescriptions = map[string][]string{
	"saas": {
		"Usage-based dashboards show exactly where your team spends its time.",
		"Role-based access keeps every workspace as open or as locked down as you need.",
		"Automated onboarding flows turn trials into paying teams.",
	},
	"ecommerce": {
		"One-click checkout keeps carts from being abandoned at the last step.",
		"Inventory sync keeps every sales channel showing accurate stock.",
		"Built-in product reviews turn happy buyers into your sales team.",
	},
	"food": {
		"Menu updates publish instantly across your site and delivery partners.",
		"Table reservations flow straight into your kitchen's planning board.",
		"Seasonal specials get their own spotlight without a redesign.",
	},
	"health": {
		"Appointment scheduling that respects both practitioner and patient time.",
		"Private by default: records stay encrypted at rest and in transit.",
		"Progress tracking keeps clients motivated between sessions.",
	},
	"education": {
		"Lesson progress syncs across devices so learners never lose their place.",
		"Built-in quizzes give instant feedback without grading overhead.",
		"Cohort tools keep classmates learning together, not alone.",
	},
	"app": {
		"Deep links take users from a shared moment straight into your app.",
		"Crash-free sessions tracked release over release.",
		"Push campaigns that reach the right users at the right moment.",
	},
	"agency": {
		"Case studies presented the way clients actually read them.",
		"Project timelines your clients can follow without a status call.",
		"A pitch-ready portfolio that updates itself from your latest work.",
	},
	"tech": {
		"An API-first core so your product fits into any stack.",
		"Edge-deployed infrastructure keeps latency low worldwide.",
		"Observability built in from the first request.",
	},
}

// styles holds the full vocabulary for each of the seven brand styles.
var styles = map[string]*Style{
	"minimal-tech": {
		ID:          "minimal-tech",
		Name:        "Minimal Tech",
		Description: "Clean, modern design with a focus on technology and innovation",
		NamePrefixes: []string{
			"Nexus", "Vertex", "Quantum", "Cipher", "Echo",
			"Pulse", "Nova", "Byte", "Flux", "Logic",
		},
		NameSuffixes: []string{
			"AI", "Tech", "Labs", "Systems", "IO",
			"HQ", "Core", "Cloud", "Data", "X",
		},
		HeadlineFormats: []string{
			"{brandName}: {idea}",
			"Introducing {brandName}",
			"{brandName} - The Future of {category}",
			"Meet {brandName}: Redefining {category}",
			"{brandName}: Intelligent {category} Solutions",
		},
		SubheadlineFormats: []string{
			"Transforming the way you experience {category}",
			"Streamlining {category} with cutting-edge technology",
			"The smarter approach to {category}",
			"Where innovation meets {category}",
			"Next-generation {category} platform",
		},
		CTAs: []string{
			"Explore Platform", "Get Started", "Try it Free",
			"See it in Action", "Join the Waitlist",
		},
		FeatureTitlePrefixes: []string{
			"Intelligent", "Seamless", "Advanced", "Automated", "Real-time",
		},
		ColorPalettes: [][3]string{
			{"#0F172A", "#1E293B", "#38BDF8"},
			{"#18181B", "#27272A", "#818CF8"},
			{"#1A1A2E", "#16213E", "#0F3460"},
			{"#111827", "#374151", "#10B981"},
			{"#0F172A", "#334155", "#F472B6"},
		},
		EmojiSets: []string{"⚙️📊🔧", "🚀💻⚡", "📱🔍📈", "🔐💾🌐", "🤖📡🔬"},
		BrandTones: []string{
			"Professional & Innovative", "Precise & Technical",
			"Efficient & Reliable", "Cutting-edge & Focused",
			"Intelligent & Streamlined",
		},
		FontPairings: []models.FontPairing{
			{Heading: "Inter", Body: "Roboto Mono"},
			{Heading: "Space Grotesk", Body: "IBM Plex Sans"},
			{Heading: "Manrope", Body: "Fira Code"},
		},
		LayoutStyle:    "minimal",
		AnimationLevel: "subtle",
	},
	"fun-youthful": {
		ID:          "fun-youthful",
		Name:        "Fun & Youthful",
		Description: "Playful, energetic design with vibrant colors and friendly tone",
		NamePrefixes: []string{
			"Boom", "Buzz", "Pop", "Zap", "Vibe",
			"Spark", "Blast", "Zoom", "Fizz", "Bounce",
		},
		NameSuffixes: []string{
			"Joy", "Blast", "Fun", "Vibes", "Squad",
			"Crew", "Gang", "Hub", "Zone", "Spot",
		},
		HeadlineFormats: []string{
			"{brandName}: {idea} Just Got Awesome!",
			"Say Hello to {brandName}!",
			"{brandName} - Making {category} Fun Again",
			"Get Ready for {brandName}!",
			"{brandName}: {category} That Doesn't Bore You",
		},
		SubheadlineFormats: []string{
			"The fun way to experience {category}",
			"{category} that actually makes you smile",
			"Who said {category} can't be exciting?",
			"Bringing joy to {category} every day",
			"Finally, {category} that's actually enjoyable",
		},
		CTAs: []string{
			"Let's Go! 🚀", "Join the Fun", "Get Started", "Jump In!", "Try it Now",
		},
		FeatureTitlePrefixes: []string{
			"Awesome", "Super", "Epic", "Fantastic", "Amazing",
		},
		ColorPalettes: [][3]string{
			{"#FF6B6B", "#4ECDC4", "#FFE66D"},
			{"#FF9F1C", "#FFBF69", "#2EC4B6"},
			{"#E63946", "#F1FAEE", "#A8DADC"},
			{"#FFADAD", "#FFD6A5", "#CAFFBF"},
			{"#9B5DE5", "#F15BB5", "#FEE440"},
		},
		EmojiSets: []string{"🎉🔥✨", "😍🚀🌈", "💯🎮🍕", "🤩👏💫", "🎯🎪🎭"},
		BrandTones: []string{
			"Playful & Energetic", "Friendly & Approachable",
			"Exciting & Vibrant", "Fun & Engaging", "Cheerful & Upbeat",
		},
		FontPairings: []models.FontPairing{
			{Heading: "Fredoka One", Body: "Quicksand"},
			{Heading: "Nunito", Body: "Varela Round"},
			{Heading: "Baloo 2", Body: "Montserrat"},
		},
		LayoutStyle:    "asymmetric",
		AnimationLevel: "playful",
	},
	"premium-corporate": {
		ID:          "premium-corporate",
		Name:        "Premium Corporate",
		Description: "Sophisticated, professional design with a focus on trust and authority",
		NamePrefixes: []string{
			"Apex", "Elite", "Prime", "Vertex", "Summit",
			"Prestige", "Capital", "Monarch", "Sterling", "Paragon",
		},
		NameSuffixes: []string{
			"Group", "Partners", "Global", "Ventures", "Capital",
			"Solutions", "Associates", "Advisors", "Enterprises", "International",
		},
		HeadlineFormats: []string{
			"{brandName}: Redefining Excellence in {category}",
			"{brandName} - Setting the Standard in {category}",
			"Introducing {brandName}: Premium {category} Solutions",
			"{brandName}: Where Excellence Meets {category}",
			"The {brandName} Advantage: Superior {category}",
		},
		SubheadlineFormats: []string{
			"Delivering exceptional {category} solutions for discerning clients",
			"Elevating {category} to unprecedented standards",
			"The premier choice for {category} excellence",
			"Sophisticated {category} solutions for today's challenges",
			"Setting the benchmark in {category} performance",
		},
		CTAs: []string{
			"Book a Consultation", "Request a Demo", "Contact Our Team",
			"Learn More", "Schedule a Meeting",
		},
		FeatureTitlePrefixes: []string{
			"Premium", "Strategic", "Comprehensive", "Exclusive", "Exceptional",
		},
		ColorPalettes: [][3]string{
			{"#1C1C1C", "#2D2D2D", "#D4AF37"},
			{"#0C1B33", "#1D3557", "#A8DADC"},
			{"#2C3639", "#3F4E4F", "#A27B5C"},
			{"#2B2D42", "#8D99AE", "#EDF2F4"},
			{"#353535", "#3C6E71", "#FFFFFF"},
		},
		EmojiSets: []string{"📈💼✅", "🏆🔐📊", "💎🤝🌟", "📱💰🔒", "🌐📑⚖️"},
		BrandTones: []string{
			"Professional & Authoritative", "Sophisticated & Refined",
			"Trustworthy & Established", "Premium & Exclusive",
			"Polished & Prestigious",
		},
		FontPairings: []models.FontPairing{
			{Heading: "Playfair Display", Body: "Source Sans Pro"},
			{Heading: "Cormorant Garamond", Body: "Raleway"},
			{Heading: "Libre Baskerville", Body: "Work Sans"},
		},
		LayoutStyle:    "classic",
		AnimationLevel: "none",
	},
	"creative-bold": {
		ID:          "creative-bold",
		Name:        "Creative & Bold",
		Description: "Striking, artistic design with bold colors and innovative layouts",
		NamePrefixes: []string{
			"Vivid", "Prism", "Spark", "Neon", "Fusion",
			"Pixel", "Hue", "Canvas", "Mosaic", "Kaleidoscope",
		},
		NameSuffixes: []string{
			"Studio", "Design", "Creative", "Arts", "Media",
			"Works", "Collective", "Lab", "House", "Atelier",
		},
		HeadlineFormats: []string{
			"{brandName}: Boldly Reimagining {category}",
			"Break the Mold with {brandName}",
			"{brandName} - Where {category} Meets Imagination",
			"Dare to be Different with {brandName}",
			"{brandName}: Creativity Unleashed in {category}",
		},
		SubheadlineFormats: []string{
			"Pushing the boundaries of {category} with bold innovation",
			"Where creative thinking transforms {category}",
			"Reimagining what {category} can be",
			"Bringing artistic vision to {category}",
			"Boldly different {category} for forward thinkers",
		},
		CTAs: []string{
			"Get Inspired", "Start Creating", "See Our Work",
			"Join the Movement", "Let's Create Together",
		},
		FeatureTitlePrefixes: []string{
			"Bold", "Creative", "Innovative", "Striking", "Visionary",
		},
		ColorPalettes: [][3]string{
			{"#FF595E", "#FFCA3A", "#8AC926"},
			{"#540D6E", "#EE4266", "#FFD23F"},
			{"#3A0CA3", "#4361EE", "#4CC9F0"},
			{"#F72585", "#7209B7", "#4CC9F0"},
			{"#FF9F1C", "#E71D36", "#2EC4B6"},
		},
		EmojiSets: []string{"🎨🔥💫", "✨🎭🌈", "🎯💡🎪", "🔮🧩🎠", "🌟🎡🎭"},
		BrandTones: []string{
			"Bold & Artistic", "Creative & Expressive", "Innovative & Daring",
			"Imaginative & Vibrant", "Striking & Original",
		},
		FontPairings: []models.FontPairing{
			{Heading: "Bebas Neue", Body: "Montserrat"},
			{Heading: "Abril Fatface", Body: "Poppins"},
			{Heading: "Yeseva One", Body: "Open Sans"},
		},
		LayoutStyle:    "bold",
		AnimationLevel: "moderate",
	},
	"eco-friendly": {
		ID:          "eco-friendly",
		Name:        "Eco-Friendly",
		Description: "Sustainable, natural design with earthy tones and organic elements",
		NamePrefixes: []string{
			"Terra", "Eco", "Green", "Leaf", "Nature",
			"Earth", "Sprout", "Bloom", "Gaia", "Verdant",
		},
		NameSuffixes: []string{
			"Life", "Earth", "Organic", "Eco", "Nature",
			"Green", "Sustainable", "Living", "Natural", "Harmony",
		},
		HeadlineFormats: []string{
			"{brandName}: Sustainable {category} for a Better Tomorrow",
			"{brandName} - Naturally Better {category}",
			"Introducing {brandName}: Eco-Conscious {category}",
			"{brandName}: Where {category} Meets Sustainability",
			"The Natural Choice: {brandName}",
		},
		SubheadlineFormats: []string{
			"Eco-friendly {category} solutions for a sustainable future",
			"Bringing natural goodness to {category}",
			"Sustainable {category} that respects our planet",
			"Environmentally conscious {category} for mindful living",
			"Nurturing our planet through better {category}",
		},
		CTAs: []string{
			"Join the Movement", "Go Green With Us", "Make a Difference",
			"Learn More", "Start Your Journey",
		},
		FeatureTitlePrefixes: []string{
			"Sustainable", "Eco-friendly", "Natural", "Organic", "Renewable",
		},
		ColorPalettes: [][3]string{
			{"#588157", "#A3B18A", "#DAD7CD"},
			{"#344E41", "#3A5A40", "#A3B18A"},
			{"#386641", "#6A994E", "#F2E8CF"},
			{"#283618", "#606C38", "#FEFAE0"},
			{"#2D6A4F", "#40916C", "#D8F3DC"},
		},
		EmojiSets: []string{"🌱🌿🍃", "♻️🌍🌎", "🌳🦋🌻", "🌊🌄🍂", "🏞️🌾🌼"},
		BrandTones: []string{
			"Natural & Sustainable", "Eco-conscious & Mindful",
			"Organic & Wholesome", "Earthy & Authentic", "Green & Harmonious",
		},
		FontPairings: []models.FontPairing{
			{Heading: "Bitter", Body: "Source Sans Pro"},
			{Heading: "Merriweather", Body: "Lato"},
			{Heading: "Aleo", Body: "Nunito Sans"},
		},
		LayoutStyle:    "asymmetric",
		AnimationLevel: "subtle",
	},
	"modern-sleek": {
		ID:          "modern-sleek",
		Name:        "Modern & Sleek",
		Description: "Minimalist, contemporary design with clean lines and sophisticated aesthetics",
		NamePrefixes: []string{
			"Mono", "Slate", "Pure", "Zen", "Aria",
			"Luma", "Noir", "Mist", "Aura", "Eon",
		},
		NameSuffixes: []string{
			"Design", "Studio", "Space", "Form", "Concept",
			"Element", "Object", "Method", "System", "Theory",
		},
		HeadlineFormats: []string{
			"{brandName}: Refined {category} for Modern Needs",
			"Introducing {brandName}: Elegantly Simple {category}",
			"{brandName} - Where Simplicity Meets {category}",
			"The New Standard in {category}: {brandName}",
			"{brandName}: Thoughtfully Designed {category}",
		},
		SubheadlineFormats: []string{
			"Streamlined {category} solutions for the modern world",
			"Simplifying {category} through thoughtful design",
			"Elevating {category} with minimalist principles",
			"Clean, intuitive {category} for discerning users",
			"Where form and function unite in {category}",
		},
		CTAs: []string{
			"Discover More", "Experience It", "Learn More",
			"Get Started", "See the Difference",
		},
		FeatureTitlePrefixes: []string{
			"Intuitive", "Streamlined", "Elegant", "Refined", "Essential",
		},
		ColorPalettes: [][3]string{
			{"#F8F9FA", "#E9ECEF", "#212529"},
			{"#FFFFFF", "#F8F9FA", "#343A40"},
			{"#DEE2E6", "#ADB5BD", "#212529"},
			{"#E0E0E0", "#F5F5F5", "#0D0D0D"},
			{"#EEEEEE", "#BDBDBD", "#424242"},
		},
		EmojiSets: []string{"◽️◾️▪️", "⚪⚫🔘", "🔳🔲⬜", "⬛◻️◼️", "🔵⚪⚫"},
		BrandTones: []string{
			"Minimal & Refined", "Elegant & Understated",
			"Clean & Contemporary", "Sophisticated & Sleek",
			"Modern & Streamlined",
		},
		FontPairings: []models.FontPairing{
			{Heading: "Montserrat", Body: "Roboto"},
			{Heading: "DM Sans", Body: "Inter"},
			{Heading: "Poppins", Body: "Work Sans"},
		},
		LayoutStyle:    "minimal",
		AnimationLevel: "subtle",
	},
	"vintage-classic": {
		ID:          "vintage-classic",
		Name:        "Vintage & Classic",
		Description: "Timeless, nostalgic design with retro elements and traditional aesthetics",
		NamePrefixes: []string{
			"Heritage", "Legacy", "Vintage", "Classic", "Retro",
			"Timeless", "Olde", "Antique", "Traditional", "Historic",
		},
		NameSuffixes: []string{
			"& Co.", "Brothers", "Emporium", "Goods", "Trading",
			"Craftsmen", "Mercantile", "Foundry", "Provisions", "Supply",
		},
		HeadlineFormats: []string{
			"{brandName}: Timeless {category} Since 2025",
			"Introducing {brandName}: Traditional {category} for Modern Times",
			"{brandName} - Crafting Quality {category}",
			"The Art of {category}: {brandName}",
			"{brandName}: Classic {category} Reimagined",
		},
		SubheadlineFormats: []string{
			"Honoring tradition in {category} with timeless quality",
			"Where heritage meets modern {category}",
			"Craftsmanship and attention to detail in every aspect of {category}",
			"Timeless {category} inspired by the past, built for the future",
			"Classic {category} values for the modern connoisseur",
		},
		CTAs: []string{
			"Discover Our Heritage", "Explore Collection", "Learn Our Story",
			"Shop Now", "Visit Us",
		},
		FeatureTitlePrefixes: []string{
			"Handcrafted", "Traditional", "Authentic", "Time-tested", "Artisanal",
		},
		ColorPalettes: [][3]string{
			{"#774936", "#D7C0AE", "#EAE0D5"},
			{"#582F0E", "#7F4F24", "#E6CCB2"},
			{"#3F4E4F", "#A27B5C", "#DCD7C9"},
			{"#2C3639", "#3F4E4F", "#A27B5C"},
			{"#4A4E69", "#9A8C98", "#F2E9E4"},
		},
		EmojiSets: []string{"🕰️📜🧵", "🪑🏺📚", "⌛🧶🔖", "🗝️📯🏛️", "🧱⚱️🪶"},
		BrandTones: []string{
			"Traditional & Timeless", "Classic & Refined",
			"Authentic & Nostalgic", "Heritage & Craftsmanship",
			"Vintage & Artisanal",
		},
		FontPairings: []models.FontPairing{
			{Heading: "Playfair Display", Body: "Lora"},
			{Heading: "Libre Baskerville", Body: "EB Garamond"},
			{Heading: "Crimson Text", Body: "Spectral"},
		},
		LayoutStyle:    "classic",
		AnimationLevel: "none",
	},
}

// StyleByID returns the named style, or nil when unknown.
func StyleByID(id string) *Style {
	return styles[id]
}

// StylesForIndustry returns the style IDs suited to an industry; unknown or
// empty industries allow every style.
func StylesForIndustry(industry string) []string {
	if ids, ok := industryStyles[industry]; ok {
		return ids
	}
	return styleIDs
}
