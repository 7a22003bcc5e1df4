// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "brandforge/internal/models"

// Defaults returns the baked-in template dataset: ten free and twenty
// premium records. It seeds the database in development and serves as the
// load fallback when every catalog source is unreachable outside production.
// Callers receive a fresh copy; the returned slice may be mutated freely.
func Defaults() []models.Template {
	out := make([]models.Template, 0, len(freeTemplates)+len(premiumTemplates))
	out = append(out, freeTemplates...)
	out = append(out, premiumTemplates...)
	return out
}

var freeTemplates = []models.Template{
	{
		ID: "free_template_1", Name: "Modern Startup", Tier: models.TierFree,
		LayoutStyle: "centered-hero",
		Industries:  []string{"saas", "tech", "general"},
		Features:    []string{"hero-section", "features-grid", "testimonials"},
		Description: "A clean centered-hero layout for **SaaS launches** with a features grid and testimonial strip.",
	},
	{
		ID: "free_template_2", Name: "Bold Business", Tier: models.TierFree,
		LayoutStyle: "split-screen",
		Industries:  []string{"agency", "general", "education"},
		Features:    []string{"hero-section", "pricing-table", "team-section"},
		Description: "Split-screen hero with a pricing table and team section for service businesses.",
	},
	{
		ID: "free_template_3", Name: "Ecommerce Essential", Tier: models.TierFree,
		LayoutStyle: "product-focused",
		Industries:  []string{"ecommerce", "food"},
		Features:    []string{"product-showcase", "features-list", "newsletter-signup"},
		Description: "Product-first layout with a newsletter capture block.",
	},
	{
		ID: "free_template_4", Name: "App Launch", Tier: models.TierFree,
		LayoutStyle: "app-showcase",
		Industries:  []string{"app", "tech"},
		Features:    []string{"app-screenshots", "download-buttons", "feature-cards"},
		Description: "Mobile-app showcase with store badges and feature cards.",
	},
	{
		ID: "free_template_5", Name: "Health Hub", Tier: models.TierFree,
		LayoutStyle: "wellness-focused",
		Industries:  []string{"health"},
		Features:    []string{"testimonials", "service-cards", "contact-form"},
		Description: "Calm wellness layout with service cards and a contact form.",
	},
	{
		ID: "free_template_6", Name: "Learn & Grow", Tier: models.TierFree,
		LayoutStyle: "education-focused",
		Industries:  []string{"education"},
		Features:    []string{"course-preview", "instructor-profiles", "curriculum-overview"},
		Description: "Course landing page with instructor profiles and a curriculum overview.",
	},
	{
		ID: "free_template_7", Name: "Food Delight", Tier: models.TierFree,
		LayoutStyle: "culinary-showcase",
		Industries:  []string{"food"},
		Features:    []string{"menu-preview", "reservation-form", "chef-profiles"},
		Description: "Culinary showcase with menu preview and reservation form.",
	},
	{
		ID: "free_template_8", Name: "Tech Innovator", Tier: models.TierFree,
		LayoutStyle: "innovation-focused",
		Industries:  []string{"tech", "saas"},
		Features:    []string{"product-demo", "feature-comparison", "client-logos"},
		Description: "Demo-led layout with a feature comparison table and client logo wall.",
	},
	{
		ID: "free_template_9", Name: "Service Pro", Tier: models.TierFree,
		LayoutStyle: "service-oriented",
		Industries:  []string{"agency", "general"},
		Features:    []string{"service-cards", "process-steps", "testimonial-carousel"},
		Description: "Service cards, a process walkthrough, and a testimonial carousel.",
	},
	{
		ID: "free_template_10", Name: "Versatile Venture", Tier: models.TierFree,
		LayoutStyle: "multipurpose",
		Industries:  []string{"general", "tech", "agency"},
		Features:    []string{"hero-section", "feature-tabs", "pricing-table", "contact-form"},
		Description: "Multipurpose layout covering hero, tabbed features, pricing, and contact.",
	},
}

var premiumTemplates = []models.Template{
	{
		ID: "premium_01", Name: "Glass Morphism Pro", Tier: models.TierPremium, PriceCents: 2900,
		LayoutStyle: "glassmorphic-hero",
		Industries:  []string{"tech", "saas", "app"},
		Features:    []string{"glassmorphism-ui", "animated-sections", "video-background"},
		Description: "Frosted-glass hero with animated sections and an optional video background.",
	},
	{
		ID: "premium_02", Name: "Gradient Flow", Tier: models.TierPremium, PriceCents: 2900,
		LayoutStyle: "gradient-split",
		Industries:  []string{"tech", "app", "general"},
		Features:    []string{"gradient-backgrounds", "animated-transitions", "3d-elements"},
		Description: "Flowing gradients with animated transitions and light 3D accents.",
	},
	{
		ID: "premium_03", Name: "Bold Typography", Tier: models.TierPremium, PriceCents: 1900,
		LayoutStyle: "typography-focused",
		Industries:  []string{"agency", "general", "education"},
		Features:    []string{"custom-typography", "text-animations", "minimal-graphics"},
		Description: "Type-driven layout where oversized headlines carry the page.",
	},
	{
		ID: "premium_04", Name: "E-Commerce Deluxe", Tier: models.TierPremium, PriceCents: 3900,
		LayoutStyle: "product-showcase",
		Industries:  []string{"ecommerce"},
		Features:    []string{"product-gallery", "shopping-cart", "wishlist-feature"},
		Description: "Full storefront feel: gallery, cart, and wishlist sections.",
	},
	{
		ID: "premium_05", Name: "Health & Wellness Pro", Tier: models.TierPremium, PriceCents: 2900,
		LayoutStyle: "wellness-premium",
		Industries:  []string{"health"},
		Features:    []string{"appointment-booking", "service-showcase", "testimonial-video"},
		Description: "Premium wellness layout with appointment booking and video testimonials.",
	},
	{
		ID: "premium_06", Name: "Video Hero", Tier: models.TierPremium, PriceCents: 3400,
		LayoutStyle: "video-background",
		Industries:  []string{"tech", "agency", "app"},
		Features:    []string{"video-hero", "parallax-scrolling", "animated-stats"},
		Description: "Full-bleed video hero with parallax scrolling and animated stats.",
	},
	{
		ID: "premium_07", Name: "Illustrated Story", Tier: models.TierPremium, PriceCents: 2400,
		LayoutStyle: "illustrated-journey",
		Industries:  []string{"education", "general", "agency"},
		Features:    []string{"custom-illustrations", "storytelling-layout", "animated-graphics"},
		Description: "Narrative scroll with custom illustrations and animated graphics.",
	},
	{
		ID: "premium_08", Name: "Restaurant Elite", Tier: models.TierPremium, PriceCents: 2900,
		LayoutStyle: "culinary-premium",
		Industries:  []string{"food"},
		Features:    []string{"menu-builder", "reservation-system", "food-gallery"},
		Description: "Upscale restaurant layout with menu builder and reservations.",
	},
	{
		ID: "premium_09", Name: "Dark Mode Pro", Tier: models.TierPremium, PriceCents: 2400,
		LayoutStyle: "dark-theme",
		Industries:  []string{"tech", "saas", "app"},
		Features:    []string{"dark-light-toggle", "neon-accents", "animated-transitions"},
		Description: "Dark-first theme with neon accents and a light-mode toggle.",
	},
	{
		ID: "premium_10", Name: "Split Screen Showcase", Tier: models.TierPremium, PriceCents: 2400,
		LayoutStyle: "dual-content",
		Industries:  []string{"agency", "tech", "general"},
		Features:    []string{"split-screen-layout", "scroll-animations", "content-reveal"},
		Description: "Dual-pane layout with scroll-triggered content reveals.",
	},
	{
		ID: "premium_11", Name: "3D Elements", Tier: models.TierPremium, PriceCents: 3900,
		LayoutStyle: "3d-showcase",
		Industries:  []string{"tech", "app", "general"},
		Features:    []string{"3d-elements", "interactive-models", "animated-transitions"},
		Description: "Interactive 3D models embedded in the hero and feature sections.",
	},
	{
		ID: "premium_12", Name: "App Showcase Elite", Tier: models.TierPremium, PriceCents: 2900,
		LayoutStyle: "app-premium",
		Industries:  []string{"app"},
		Features:    []string{"device-mockups", "feature-showcase", "app-screenshots"},
		Description: "Device mockups and screenshot carousels for app launches.",
	},
	{
		ID: "premium_13", Name: "Course Creator Pro", Tier: models.TierPremium, PriceCents: 2900,
		LayoutStyle: "education-premium",
		Industries:  []string{"education"},
		Features:    []string{"course-preview", "lesson-structure", "student-testimonials"},
		Description: "Course sales page with lesson structure and student proof.",
	},
	{
		ID: "premium_14", Name: "Agency Portfolio", Tier: models.TierPremium, PriceCents: 2400,
		LayoutStyle: "portfolio-showcase",
		Industries:  []string{"agency"},
		Features:    []string{"case-studies", "team-profiles", "service-showcase"},
		Description: "Case-study-led portfolio with team profiles.",
	},
	{
		ID: "premium_15", Name: "SaaS Dashboard", Tier: models.TierPremium, PriceCents: 3400,
		LayoutStyle: "dashboard-preview",
		Industries:  []string{"saas", "tech"},
		Features:    []string{"dashboard-mockup", "feature-tour", "pricing-calculator"},
		Description: "Dashboard mockup hero with a guided feature tour and pricing calculator.",
	},
	{
		ID: "premium_16", Name: "Parallax Scrolling", Tier: models.TierPremium, PriceCents: 2400,
		LayoutStyle: "parallax-story",
		Industries:  []string{"general", "agency", "tech"},
		Features:    []string{"parallax-effects", "scroll-animations", "storytelling-layout"},
		Description: "Layered parallax storytelling from top to CTA.",
	},
	{
		ID: "premium_17", Name: "Interactive Product", Tier: models.TierPremium, PriceCents: 3400,
		LayoutStyle: "interactive-showcase",
		Industries:  []string{"ecommerce", "tech"},
		Features:    []string{"interactive-product-view", "feature-highlight", "customization-preview"},
		Description: "Interactive product viewer with live customization preview.",
	},
	{
		ID: "premium_18", Name: "Subscription Service", Tier: models.TierPremium, PriceCents: 2400,
		LayoutStyle: "subscription-focused",
		Industries:  []string{"saas", "general"},
		Features:    []string{"pricing-tiers", "feature-comparison", "testimonial-carousel"},
		Description: "Tiered pricing with a comparison matrix and testimonial carousel.",
	},
	{
		ID: "premium_19", Name: "Event Launch", Tier: models.TierPremium, PriceCents: 1900,
		LayoutStyle: "event-countdown",
		Industries:  []string{"general", "education"},
		Features:    []string{"countdown-timer", "speaker-profiles", "schedule-overview"},
		Description: "Event page with countdown, speakers, and schedule.",
	},
	{
		ID: "premium_20", Name: "Ultimate Business", Tier: models.TierPremium, PriceCents: 4900,
		LayoutStyle: "business-premium",
		Industries:  []string{"general", "agency", "tech"},
		Features:    []string{"all-in-one", "customizable-sections", "animation-library"},
		Description: "Everything-included business layout with a full animation library.",
	},
}
