// internal/catalog/seed.go
package catalog

// seedProducts is the static product seed. IDs are stable; cart, wishlist
// and recently-viewed entries reference products by these IDs.
func seedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Quantum Wireless Headphones",
			Trending:    true,
			Price:       299,
			Image:       "/assets/product-headphones.jpg",
			Category:    CategoryAudio,
			Description: "Experience audio like never before with AI-enhanced sound processing and adaptive noise cancellation.",
			Features: []string{
				"AI-Powered Sound Enhancement",
				"Active Noise Cancellation",
				"40-Hour Battery Life",
				"Premium Comfort Design",
			},
			AIGenerated: true,
			Rating:      4.8,
			Reviews:     234,
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "Aura SmartWatch Pro",
			Price:       449,
			Image:       "/assets/product-watch.jpg",
			Category:    CategoryWearable,
			Description: "Your intelligent health companion with holographic interface and real-time biometric monitoring.",
			Features: []string{
				"Holographic Display",
				"Health Monitoring AI",
				"Water Resistant",
				"7-Day Battery",
			},
			AIGenerated: true,
			Rating:      4.9,
			Reviews:     189,
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Neon Gaming Keyboard",
			Trending:    true,
			Price:       199,
			Image:       "/assets/product-keyboard.jpg",
			Category:    CategoryGaming,
			Description: "Mechanical precision meets RGB brilliance. AI-driven key optimization for your gaming style.",
			Features: []string{
				"Mechanical Switches",
				"RGB Customization",
				"AI Key Mapping",
				"Anti-Ghosting Tech",
			},
			AIGenerated: true,
			Rating:      4.7,
			Reviews:     312,
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "Echo Sphere Speaker",
			Price:       349,
			Image:       "/assets/product-speaker.jpg",
			Category:    CategoryAudio,
			Description: "360° immersive sound with AI room adaptation for perfect acoustics anywhere.",
			Features: []string{
				"360° Sound Field",
				"Room Adaptation AI",
				"Voice Assistant",
				"Premium Materials",
			},
			AIGenerated: true,
			Rating:      4.6,
			Reviews:     156,
			InStock:     true,
		},
		{
			ID:          5,
			Name:        "Holograph Phone X",
			Price:       999,
			Image:       "/assets/product-phone.jpg",
			Category:    CategorySmart,
			Description: "The future of mobile technology with holographic display and AI assistant integration.",
			Features: []string{
				"Holographic Interface",
				"AI Personal Assistant",
				"5G Connectivity",
				"Quantum Processor",
			},
			AIGenerated: true,
			Rating:      4.9,
			Reviews:     423,
			InStock:     true,
		},
		{
			ID:          6,
			Name:        "Vision VR Headset",
			Price:       699,
			Image:       "/assets/product-vr.jpg",
			Category:    CategoryVR,
			Description: "Step into the metaverse with our most advanced VR system featuring eye-tracking and haptic feedback.",
			Features: []string{
				"Eye Tracking",
				"Haptic Feedback",
				"4K Per Eye",
				"Wireless Freedom",
			},
			AIGenerated: true,
			Rating:      4.8,
			Reviews:     267,
			InStock:     true,
		},
	}
}

// seedCategories is the fixed category filter list shown in the shop
func seedCategories() []CategoryInfo {
	return []CategoryInfo{
		{ID: "all", Label: "All Products"},
		{ID: "audio", Label: "Audio"},
		{ID: "wearable", Label: "Wearables"},
		{ID: "gaming", Label: "Gaming"},
		{ID: "smart", Label: "Smart Devices"},
		{ID: "vr", Label: "Virtual Reality"},
	}
}
