// filepath: internal/initconfig/demo.go
package initconfig

// Demo returns the built-in showcase dataset: one client with a known
// access code, a completed wedding session with categorized photos, and
// the public portfolio albums. Seeding it gives a fresh in-memory
// deployment something to show.
func Demo() InitConfig {
	return InitConfig{
		Clients: []InitClient{
			{
				Name:       "Sarah Johnson",
				Email:      "sarah@example.com",
				Phone:      "+1 (555) 123-4567",
				AccessCode: "DEMO2024",
				Sessions: []InitSession{
					{
						Name:   "Wedding Photography",
						Date:   "2024-06-15",
						Type:   "Wedding",
						Status: "completed",
						Photos: []InitPhoto{
							{Filename: "ceremony_001.jpg", Category: "Ceremony", ByteLength: 4200000, ContentRef: "https://images.unsplash.com/photo-1758810409847-f0dd071cda59?w=1080"},
							{Filename: "reception_023.jpg", Category: "Reception", ByteLength: 3800000, ContentRef: "https://images.unsplash.com/photo-1549620936-aa6278062ba5?w=1080"},
							{Filename: "portraits_045.jpg", Category: "Portraits", ByteLength: 5100000, ContentRef: "https://images.unsplash.com/photo-1749224280334-460eb823e0c4?w=1080"},
							{Filename: "details_012.jpg", Category: "Details", ByteLength: 2900000, ContentRef: "https://images.unsplash.com/photo-1599081753523-a20f731f42c9?w=1080"},
							{Filename: "getting_ready_008.jpg", Category: "Getting Ready", ByteLength: 3500000, ContentRef: "https://images.unsplash.com/photo-1672289444692-2bd3b48c5178?w=1080"},
							{Filename: "cake_cutting_056.jpg", Category: "Reception", ByteLength: 4000000, ContentRef: "https://images.unsplash.com/photo-1695987528224-f4b9becb7a5d?w=1080"},
							{Filename: "dancing_067.jpg", Category: "Reception", ByteLength: 3700000, ContentRef: "https://images.unsplash.com/photo-1756483557756-1b40cb0421f0?w=1080"},
							{Filename: "bouquet_005.jpg", Category: "Details", ByteLength: 3200000, ContentRef: "https://images.unsplash.com/photo-1664312696723-173130983e27?w=1080"},
							{Filename: "ceremony_015.jpg", Category: "Ceremony", ByteLength: 4500000, ContentRef: "https://images.unsplash.com/photo-1611456531646-2a68d6df2723?w=1080"},
							{Filename: "portraits_038.jpg", Category: "Portraits", ByteLength: 4800000, ContentRef: "https://images.unsplash.com/photo-1709887139259-e5fdce21afa8?w=1080"},
							{Filename: "getting_ready_019.jpg", Category: "Getting Ready", ByteLength: 3900000, ContentRef: "https://images.unsplash.com/photo-1532272278764-53cd1fe53f72?w=1080"},
							{Filename: "portraits_052.jpg", Category: "Portraits", ByteLength: 5300000, ContentRef: "https://images.unsplash.com/photo-1632613714614-e817d3814a8e?w=1080"},
						},
					},
				},
			},
		},
		Albums: []InitAlbum{
			{
				Name: "Weddings",
				Photos: []InitAlbumPhoto{
					{URL: "https://images.unsplash.com/photo-1647730346047-649e23e3c7fa?w=1080", Title: "Sarah & John", Session: "Wedding Day"},
					{URL: "https://images.unsplash.com/photo-1682113297701-add548fca303?w=1080", Title: "Bridal Portrait", Session: "Emma's Wedding"},
					{URL: "https://images.unsplash.com/photo-1729075538820-f7720b2d3db4?w=1080", Title: "Engagement Session", Session: "Alex & Maria"},
					{URL: "https://images.unsplash.com/photo-1611456531646-2a68d6df2723?w=1080", Title: "Reception", Session: "Sofia & Michael"},
					{URL: "https://images.unsplash.com/photo-1709887139259-e5fdce21afa8?w=1080", Title: "First Dance", Session: "David & Anna"},
					{URL: "https://images.unsplash.com/photo-1532272278764-53cd1fe53f72?w=1080", Title: "Ceremony", Session: "Chris & Julie"},
					{URL: "https://images.unsplash.com/photo-1614492025699-2a9ea5b8c58b?w=1080", Title: "Getting Ready", Session: "Sarah & John"},
					{URL: "https://images.unsplash.com/photo-1506863530036-1efeddceb993?w=1080", Title: "Portraits", Session: "Emma's Wedding"},
				},
			},
			{
				Name: "Portrait Sessions",
				Photos: []InitAlbumPhoto{
					{URL: "https://images.unsplash.com/photo-1532272278764-53cd1fe53f72?w=1080", Title: "Studio Session", Session: "Individual Portrait"},
					{URL: "https://images.unsplash.com/photo-1568585105565-e372998a195d?w=1080", Title: "Professional Headshot", Session: "Corporate Session"},
					{URL: "https://images.unsplash.com/photo-1506863530036-1efeddceb993?w=1080", Title: "B&W Portrait", Session: "Artistic Session"},
					{URL: "https://images.unsplash.com/photo-1715871583544-3a20163b5cca?w=1080", Title: "Senior Portrait", Session: "Graduation 2024"},
					{URL: "https://images.unsplash.com/photo-1593382067395-ace3045a1547?w=1080", Title: "Creative Portrait", Session: "Art Series"},
					{URL: "https://images.unsplash.com/photo-1686774272000-7096622ba435?w=1080", Title: "Outdoor Portrait", Session: "Natural Light"},
				},
			},
			{
				Name: "Family & Maternity",
				Photos: []InitAlbumPhoto{
					{URL: "https://images.unsplash.com/photo-1601294281485-2b5a214689dc?w=1080", Title: "Family Session", Session: "Johnson Family"},
					{URL: "https://images.unsplash.com/photo-1639400786129-29aef6b3ce38?w=1080", Title: "Maternity", Session: "Expecting Joy"},
					{URL: "https://images.unsplash.com/photo-1688048703620-4554ea8b7f24?w=1080", Title: "Newborn", Session: "Baby Oliver"},
					{URL: "https://images.unsplash.com/photo-1632613714614-e817d3814a8e?w=1080", Title: "Lifestyle", Session: "Smith Family"},
					{URL: "https://images.unsplash.com/photo-1611456531646-2a68d6df2723?w=1080", Title: "Extended Family", Session: "Holiday Portraits"},
				},
			},
			{
				Name: "Fashion Editorial",
				Photos: []InitAlbumPhoto{
					{URL: "https://images.unsplash.com/photo-1611456531646-2a68d6df2723?w=1080", Title: "Vogue Inspired", Session: "Editorial 2024"},
					{URL: "https://images.unsplash.com/photo-1709887139259-e5fdce21afa8?w=1080", Title: "Modern Elegance", Session: "Spring Collection"},
					{URL: "https://images.unsplash.com/photo-1614492025699-2a9ea5b8c58b?w=1080", Title: "Street Style", Session: "Urban Fashion"},
					{URL: "https://images.unsplash.com/photo-1686774272000-7096622ba435?w=1080", Title: "Outdoor Fashion", Session: "Summer Campaign"},
					{URL: "https://images.unsplash.com/photo-1593382067395-ace3045a1547?w=1080", Title: "Avant Garde", Session: "Art Direction"},
					{URL: "https://images.unsplash.com/photo-1682113297701-add548fca303?w=1080", Title: "Haute Couture", Session: "Designer Series"},
					{URL: "https://images.unsplash.com/photo-1532272278764-53cd1fe53f72?w=1080", Title: "Minimalist", Session: "Clean Lines"},
				},
			},
		},
	}
}
