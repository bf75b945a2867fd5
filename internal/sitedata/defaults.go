package sitedata

import "mohsin_travel/internal/adapters/apiclient"

// Defaults returns a fresh copy of the bundled dataset. It is only an
// initial-render placeholder: the first successful fetch replaces it with
// the server's view.
func Defaults() SiteData {
	return SiteData{
		SiteSettings: apiclient.SiteSettings{
			CompanyName: "M Mohsin International Travel Management",
			Email:       "info@mmohsintravel.com",
			Phones:      []string{"+92 300 0180347", "+92 302 7553524"},
			Whatsapp:    "923000180347",
			Address:     "Near Govt. Muslim Model High School, Darman Road, Shakargarh",
			SocialLinks: &apiclient.SocialLinks{
				Facebook:  "https://facebook.com",
				Instagram: "https://instagram.com",
				Youtube:   "https://youtube.com",
				Whatsapp:  "https://wa.me/923000180347",
			},
			BusinessHours: []apiclient.BusinessHour{
				{Day: "Monday - Saturday", Hours: "10:00 AM - 7:00 PM"},
				{Day: "Sunday", Hours: "Closed (WhatsApp available)"},
			},
		},
		UmrahPackages: []apiclient.Package{
			{
				ID: "1", Name: "Economy Umrah", Duration: "7 Days / 6 Nights",
				Price: "PKR 185,000", Hotel: "Al Safwah Tower", HotelRating: 3,
				Distance: "500m from Haram",
				Inclusions: []string{
					"Umrah Visa Processing", "Return Economy Flights",
					"3-Star Hotel in Makkah (3 nights)", "3-Star Hotel in Madinah (3 nights)",
					"Airport Transfers", "Ziyarat Tours in both cities",
				},
				Image: "https://images.unsplash.com/photo-1591604129939-f1efa4d9f7fa?w=800&auto=format&fit=crop&q=80",
			},
			{
				ID: "2", Name: "Standard Umrah", Duration: "10 Days / 9 Nights",
				Price: "PKR 245,000", Hotel: "Anjum Hotel", HotelRating: 4,
				Distance: "200m from Haram",
				Inclusions: []string{
					"Umrah Visa Processing", "Return Economy Flights",
					"4-Star Hotel in Makkah (5 nights)", "4-Star Hotel in Madinah (4 nights)",
					"Private Airport Transfers", "Full Ziyarat Tours", "Daily Breakfast",
				},
				Image: "https://images.unsplash.com/photo-1564769625905-50e93615e769?w=800&auto=format&fit=crop&q=80",
			},
			{
				ID: "3", Name: "Premium Umrah", Duration: "10 Days / 9 Nights",
				Price: "PKR 295,000", Hotel: "Pullman ZamZam", HotelRating: 5,
				Distance: "Steps from Haram", Featured: true,
				Inclusions: []string{
					"Umrah Visa Processing", "Return Economy Flights",
					"5-Star Pullman ZamZam Makkah (5 nights)", "5-Star Madinah Hilton (4 nights)",
					"VIP Airport Transfers", "Comprehensive Ziyarat",
					"Daily Breakfast & Dinner", "24/7 Guide Support",
				},
				Image: "https://images.unsplash.com/photo-1591604129939-f1efa4d9f7fa?w=800&auto=format&fit=crop&q=80",
			},
			{
				ID: "4", Name: "VIP Umrah", Duration: "14 Days / 13 Nights",
				Price: "PKR 450,000", Hotel: "Fairmont Makkah", HotelRating: 5,
				Distance: "Haram View Rooms",
				Inclusions: []string{
					"Umrah Visa Processing", "Business Class Flights",
					"5-Star Fairmont Makkah (7 nights) - Haram View", "5-Star Oberoi Madinah (6 nights)",
					"Luxury VIP Transfers", "Private Guide Throughout",
					"All Meals Included", "Laundry Service", "Dedicated Concierge",
				},
				Image: "https://images.unsplash.com/photo-1564769625905-50e93615e769?w=800&auto=format&fit=crop&q=80",
			},
			{
				ID: "5", Name: "Family Umrah", Duration: "12 Days / 11 Nights",
				Price: "PKR 275,000", Hotel: "Swissotel", HotelRating: 5,
				Distance: "Connected to Haram",
				Inclusions: []string{
					"Umrah Visa for Family", "Return Flights (Group Rates)",
					"Family Suite in Makkah (6 nights)", "Family Suite in Madinah (5 nights)",
					"Family-Friendly Transfers", "Kids-Focused Ziyarat",
					"All Meals Included", "Stroller & Baby Essentials",
				},
				Image: "https://images.unsplash.com/photo-1591604129939-f1efa4d9f7fa?w=800&auto=format&fit=crop&q=80",
			},
			{
				ID: "6", Name: "Ramadan Special", Duration: "15 Days / 14 Nights",
				Price: "PKR 395,000", Hotel: "Hilton Suites", HotelRating: 5,
				Distance: "50m from Haram",
				Inclusions: []string{
					"Umrah Visa Processing", "Return Flights",
					"5-Star Makkah (10 nights)", "5-Star Madinah (4 nights)",
					"Iftar & Suhoor Included", "Special Ramadan Programs",
					"Taraweeh Prayer Arrangements", "24/7 Guide Support",
				},
				Image: "https://images.unsplash.com/photo-1564769625905-50e93615e769?w=800&auto=format&fit=crop&q=80",
			},
		},
		Destinations: []apiclient.Destination{
			{ID: "1", City: "Jeddah", Country: "Saudi Arabia", From: "PKR 85,000", Image: "https://images.unsplash.com/photo-1586724237569-f3d0c1dee8c6?w=800&auto=format&fit=crop&q=80"},
			{ID: "2", City: "Madinah", Country: "Saudi Arabia", From: "PKR 82,000", Image: "https://images.unsplash.com/photo-1591604129939-f1efa4d9f7fa?w=800&auto=format&fit=crop&q=80"},
			{ID: "3", City: "Dubai", Country: "UAE", From: "PKR 65,000", Image: "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&auto=format&fit=crop&q=80"},
			{ID: "4", City: "Istanbul", Country: "Turkey", From: "PKR 95,000", Image: "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?w=800&auto=format&fit=crop&q=80"},
			{ID: "5", City: "London", Country: "United Kingdom", From: "PKR 145,000", Image: "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&auto=format&fit=crop&q=80"},
			{ID: "6", City: "Kuala Lumpur", Country: "Malaysia", From: "PKR 75,000", Image: "https://images.unsplash.com/photo-1596422846543-75c6fc197f07?w=800&auto=format&fit=crop&q=80"},
		},
		Airlines: []apiclient.Airline{
			{ID: "1", Name: "PIA", Logo: "/assets/airlines/pia-logo.png"},
			{ID: "2", Name: "Air Blue", Logo: "/assets/airlines/air-blue-logo.png"},
			{ID: "3", Name: "Shaheen Air", Logo: "/assets/airlines/shaheen-logo.png"},
			{ID: "4", Name: "Qatar Airways", Logo: "/assets/airlines/qatar-airways-logo.png"},
			{ID: "5", Name: "Etihad Airways", Logo: "/assets/airlines/etihad-logo.png"},
			{ID: "6", Name: "Emirates", Logo: "/assets/airlines/emirates-logo.png"},
			{ID: "7", Name: "Serene Air", Logo: "/assets/airlines/serene-air-logo.png"},
			{ID: "8", Name: "Gulf Air", Logo: "/assets/airlines/gulf-air-logo.png"},
			{ID: "9", Name: "Thai Airways", Logo: "/assets/airlines/thai-air-logo.png"},
			{ID: "10", Name: "Saudia", Logo: "/assets/airlines/saudia-airline-logo.png"},
		},
		TeamMembers: []apiclient.TeamMember{
			{ID: "1", Name: "Mohsin Raza", Role: "Founder & CEO", Description: "10+ years of experience in travel management and Umrah services."},
			{ID: "2", Name: "Hassan Raza", Role: "Operations Manager", Description: "Expert in logistics and customer service coordination."},
			{ID: "3", Name: "Hussnain Raza", Role: "CTO", Description: "Leading technology initiatives and digital transformation."},
		},
		CounterStats: []apiclient.CounterStat{
			{ID: "1", Icon: "Calendar", Target: 5000, Suffix: "+", Label: "Bookings"},
			{ID: "2", Icon: "Users", Target: 50, Suffix: "+", Label: "Agents"},
			{ID: "3", Icon: "Award", Target: 10000, Suffix: "+", Label: "Happy Clients"},
			{ID: "4", Icon: "Clock", Target: 14, Suffix: "+", Label: "Years of Experience"},
		},
		AboutContent: apiclient.AboutContent{
			HeroTitle:       "Your Trusted Travel Partner Since 2010",
			HeroDescription: "M Mohsin International Travel Management is dedicated to making your spiritual and travel dreams a reality with exceptional service and care.",
			MainTitle:       "Creating Memorable Journeys for Over a Decade",
			Paragraphs: []string{
				"Welcome to M Mohsin International Travel Management, your dedicated partner in creating unforgettable travel experiences. With years of expertise in the travel industry, we pride ourselves on delivering personalized service and unparalleled knowledge to ensure every journey is as seamless and enjoyable as possible.",
				"Our team of passionate travel experts is committed to crafting tailored itineraries that cater to your unique interests and preferences, whether you're seeking a tranquil getaway, an adventurous expedition, or a spiritual exploration.",
				"At M Mohsin International, we believe that travel is more than just a destination - it's an opportunity to discover new perspectives and create lasting memories. Let us guide you on your next adventure and turn your travel dreams into reality.",
			},
			Mission:         "To provide exceptional travel services that exceed expectations, making every journey a memorable experience. We are committed to offering reliable, affordable, and personalized travel solutions for all our clients.",
			Vision:          "To become the most trusted and preferred travel agency in Pakistan, known for our integrity, quality service, and commitment to making spiritual journeys accessible and comfortable for everyone.",
			YearsExperience: 14,
		},
	}
}
