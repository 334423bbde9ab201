package catalog

import "darshan/internal/models"

// Default returns the built-in Jharkhand catalog used when no catalog file
// is configured.
func Default() *Catalog {
	c := &Catalog{
		Hotels: []models.Hotel{
			{Name: "Radisson Blu Hotel", Location: "Ranchi", Price: 7500, Rating: 4.5,
				Description: "A premier luxury hotel in the heart of Ranchi.",
				Amenities:   []string{"Pool", "Spa", "WiFi", "Gym", "Restaurant"}},
			{Name: "The Alcor Hotel", Location: "Jamshedpur", Price: 6000, Rating: 4.3,
				Description: "Modern elegance meets comfort at The Alcor.",
				Amenities:   []string{"WiFi", "Gym", "Restaurant", "Parking"}},
			{Name: "Hotel Rajmahal", Location: "Deoghar", Price: 3500, Rating: 4.0,
				Description: "Traditional hospitality near the major temples.",
				Amenities:   []string{"Restaurant", "Parking", "Room Service"}},
			{Name: "Le Lac Sarovar Portico", Location: "Ranchi", Price: 5500, Rating: 4.2,
				Description: "Stunning views over Ranchi Lake.",
				Amenities:   []string{"Lake View", "WiFi", "Restaurant", "Gym"}},
			{Name: "The Sonnet", Location: "Jamshedpur", Price: 4800, Rating: 4.1,
				Description: "A boutique hotel known for personalized service and contemporary design.",
				Amenities:   []string{"Pool", "WiFi", "Gym", "Bar"}},
			{Name: "Capitol Hill", Location: "Ranchi", Price: 4200, Rating: 4.0,
				Description: "Located in the city center, convenient for all travelers.",
				Amenities:   []string{"Restaurant", "WiFi", "Parking"}},
			{Name: "Hotel Ganga Regency", Location: "Jamshedpur", Price: 3800, Rating: 3.9,
				Description: "A reliable choice for travelers seeking comfort and value.",
				Amenities:   []string{"Room Service", "WiFi", "Parking"}},
			{Name: "Chanakya BNR Hotel", Location: "Ranchi", Price: 5800, Rating: 4.4,
				Description: "A heritage hotel combining old-world charm with modern amenities.",
				Amenities:   []string{"Pool", "Restaurant", "Garden", "WiFi"}},
		},
		Guides: []models.Guide{
			{ID: 1, Name: "Rohan Gupta", Specialty: "Wildlife & Nature Expert",
				Experience: 15, Languages: []string{"English", "Hindi", "Santhali"},
				Tagline:        "Unveiling the secrets of Jharkhand's wilds.",
				VerificationID: "JH-TOUR-GUIDE-8431A"},
			{ID: 2, Name: "Priya Singh", Specialty: "Cultural & Heritage Tours",
				Experience: 10, Languages: []string{"English", "Hindi", "Santhali"},
				Tagline:        "Bringing the stories of ancient stones to life.",
				VerificationID: "JH-TOUR-GUIDE-9112B"},
			{ID: 3, Name: "Ankit Mishra", Specialty: "Adventure & Trekking Guide",
				Experience: 8, Languages: []string{"English", "Hindi", "Nagpuri", "Santhali"},
				Tagline:        "Your partner for the highest peaks and deepest falls.",
				VerificationID: "JH-TOUR-GUIDE-7554C"},
			{ID: 4, Name: "Sunita Devi", Specialty: "Local Cuisine & Crafts",
				Experience: 20, Languages: []string{"Hindi", "Santhali", "Bengali"},
				Tagline:        "Taste the true, authentic soul of Jharkhand.",
				VerificationID: "JH-TOUR-GUIDE-6201D"},
		},
		Places: []models.Place{
			{Name: "Betla National Park", Location: "Latehar",
				Description: "Home to tigers, elephants, and a rich variety of deer species."},
			{Name: "Baidyanath Temple", Location: "Deoghar",
				Description: "One of the twelve Jyotirlingas, a major pilgrimage site."},
			{Name: "Patratu Valley", Location: "Ranchi",
				Description: "Famous for its winding roads and panoramic views of the Patratu Dam."},
			{Name: "Hundru Falls", Location: "Ranchi",
				Description: "The Subarnarekha River falls from a height of 98 meters."},
			{Name: "Dassam Falls", Location: "Ranchi",
				Description: "A natural waterfall surrounded by lush greenery, perfect for a day trip."},
			{Name: "Jubilee Park", Location: "Jamshedpur",
				Description: "A sprawling urban park with fountains and a zoo."},
			{Name: "Jonha Falls", Location: "Ranchi",
				Description: "Also known as Gautamdhara, surrounded by dense forests."},
			{Name: "Parasnath Hills", Location: "Giridih",
				Description: "A major Jain pilgrimage site atop the highest peak in Jharkhand."},
			{Name: "Saranda Forest", Location: "West Singhbhum",
				Description: "The land of seven hundred hills, Asia's largest Sal forest."},
			{Name: "Rajrappa Temple", Location: "Ramgarh",
				Description: "A Shakti Peeth dedicated to Goddess Chhinnamasta at a river confluence."},
			{Name: "Palamu Forts", Location: "Palamu",
				Description: "A pair of historic forts deep in the forests of the Chero dynasty."},
			{Name: "Tribal Handicrafts", Location: "Across Jharkhand",
				Description: "Centers showcasing Dokra art, bamboo crafts, and traditional paintings."},
			{Name: "Karma Dance", Location: "Cultural Festival",
				Description: "A communal dance performed during the Karma festival."},
			{Name: "Dhemsa Dance", Location: "Tribal Communities",
				Description: "A rhythmic group dance performed by tribal women in traditional attire."},
			{Name: "Chhau Dance", Location: "Seraikela",
				Description: "A semi-classical dance with martial origins, performed with ornate masks."},
			{Name: "Mardani Jhumar", Location: "Nagpuria Region",
				Description: "An energetic folk dance performed by men."},
			{Name: "Netarhat", Location: "Latehar",
				Description: "The Queen of Chotanagpur, famous for sunrises and sunsets."},
			{Name: "Canary Hill", Location: "Hazaribagh",
				Description: "A watchtower hill with panoramic views of Hazaribagh town."},
			{Name: "McCluskieganj", Location: "Ranchi",
				Description: "A quaint town with a unique Anglo-Indian heritage."},
		},
		Markets: []models.Market{
			{Name: "Upper Bazaar", Location: "Ranchi",
				Description:  "A bustling, historic market famous for textiles, spices and snacks.",
				PopularItems: []string{"Pua", "Thekua", "Bamboo Crafts", "Spices"}},
			{Name: "Sakchi Market", Location: "Jamshedpur",
				Description:  "One of the oldest markets in Jamshedpur.",
				PopularItems: []string{"Fresh Produce", "Street Food", "Electronics", "Textiles"}},
			{Name: "Paltan Bazaar", Location: "Deoghar",
				Description:  "Near the Baidyanath Temple, best for religious items and sweets.",
				PopularItems: []string{"Peda", "Religious Idols", "Bangles", "Puja Items"}},
			{Name: "Firayalal", Location: "Ranchi",
				Description:  "A famous shopping destination for clothing, accessories and branded goods.",
				PopularItems: []string{"Apparel", "Footwear", "Cosmetics", "Jewellery"}},
		},
		Contacts: []models.EmergencyContact{
			{Name: "Kotwali Thana, Ranchi", Phone: "0651-2215444"},
			{Name: "Sakchi Thana, Jamshedpur", Phone: "0657-2424111"},
			{Name: "Dhanbad Sadar Thana", Phone: "0326-2313333"},
			{Name: "Audrey House Fire Station, Ranchi", Phone: "0651-2461001"},
			{Name: "Golmuri Fire Station, Jamshedpur", Phone: "0657-2342222"},
			{Name: "Dhanbad Fire Station", Phone: "0326-2303030"},
			{Name: "RIMS, Ranchi", Phone: "0651-2541768"},
			{Name: "Tata Main Hospital, Jamshedpur", Phone: "0657-6641111"},
			{Name: "PMCH, Dhanbad", Phone: "0326-2204567"},
		},
		Notices: []models.BoardNotice{
			{Name: "Sarhul Festival", Date: "April 2025", Type: "event",
				Description: "A vibrant tribal festival celebrating nature and the new year."},
			{Name: "Road Closure Alert", Date: "Ongoing", Type: "alert",
				Description: "The road to Patratu Valley may close during monsoon repairs."},
			{Name: "New Light Show at Jubilee Park", Date: "Effective Immediately", Type: "announcement",
				Description: "A musical fountain and light show at Jubilee Park, daily at 7 PM."},
			{Name: "Hundru Falls Viewpoint", Date: "Monsoon Season", Type: "info",
				Description: "Best view of the waterfall between 10 AM and 2 PM on a clear day."},
		},
	}

	// The built-in data is static and well-formed; indexing cannot fail.
	if err := c.index(); err != nil {
		panic(err)
	}
	return c
}
