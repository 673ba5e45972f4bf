package repositories

import (
	"time"

	"estatecrm/internal/models"
)

// Seeded returns a store preloaded with the demo dataset. Ids are stable
// so the API can be exercised without a discovery step. One client keeps
// a dangling saved property id on purpose; resolution must drop it.
func Seeded() *Store {
	now := time.Now()
	day := 24 * time.Hour

	s := NewStore()

	s.users = []models.User{
		{ID: "u1", Name: "Sarah Johnson", Role: models.RoleAdmin, Email: "sarah.johnson@estatecrm.io"},
		{ID: "u2", Name: "Sarah Wilson", Role: models.RoleAgent, Email: "sarah.wilson@estatecrm.io", Target: 2000000},
		{ID: "u3", Name: "Mike Chen", Role: models.RoleAgent, Email: "mike.chen@estatecrm.io", Target: 1500000},
		{ID: "u4", Name: "Dana Ortiz", Role: models.RoleOwner, Email: "dana.ortiz@estatecrm.io"},
	}

	s.props = []models.Property{
		{ID: "p1", Title: "Skyline Apartment 12B", Type: models.PropertyApartment, Location: "Downtown",
			Price: 950000, AreaSqft: 1250, Bed: 2, Bath: 2, Amenities: []string{"Gym", "Parking"},
			Lat: 40.7128, Lng: -74.0060, OwnerName: "R. Patel", OwnerPhone: "+1-555-0131",
			Images: []string{"p1-01.jpg"}, Description: "Corner unit with river view.", CreatedAt: now.Add(-90 * day)},
		{ID: "p2", Title: "Uptown Garden Villa", Type: models.PropertyVilla, Location: "Uptown",
			Price: 1750000, AreaSqft: 3400, Bed: 4, Bath: 3, Amenities: []string{"Pool", "Garden"},
			Lat: 40.7831, Lng: -73.9712, OwnerName: "L. Moreau", OwnerPhone: "+1-555-0144",
			Images: []string{"p2-01.jpg"}, Description: "Quiet street, renovated 2023.", CreatedAt: now.Add(-75 * day)},
		{ID: "p3", Title: "Waterfront Penthouse", Type: models.PropertyApartment, Location: "Waterfront",
			Price: 2800000, AreaSqft: 2900, Bed: 3, Bath: 3, Amenities: []string{"Terrace", "Concierge"},
			Lat: 40.7024, Lng: -74.0150, OwnerName: "T. Nakamura", OwnerPhone: "+1-555-0107",
			Images: []string{"p3-01.jpg", "p3-02.jpg"}, Description: "Full-floor penthouse.", CreatedAt: now.Add(-60 * day)},
		{ID: "p4", Title: "Midtown Office Floor", Type: models.PropertyCommercial, Location: "Midtown",
			Price: 1200000, AreaSqft: 5200, Amenities: []string{"Elevator", "Parking"},
			Lat: 40.7549, Lng: -73.9840, OwnerName: "Crestline Holdings", OwnerPhone: "+1-555-0170",
			Images: []string{"p4-01.jpg"}, Description: "Open plan, fitted out.", CreatedAt: now.Add(-55 * day)},
		{ID: "p5", Title: "Midtown Loft 3A", Type: models.PropertyApartment, Location: "Midtown",
			Price: 820000, AreaSqft: 980, Bed: 1, Bath: 1, Amenities: []string{"Gym"},
			Lat: 40.7527, Lng: -73.9772, OwnerName: "J. Brennan", OwnerPhone: "+1-555-0152",
			Images: []string{"p5-01.jpg"}, Description: "High ceilings, south facing.", CreatedAt: now.Add(-40 * day)},
		{ID: "p6", Title: "Downtown Corner Plot", Type: models.PropertyPlot, Location: "Downtown",
			Price: 640000, AreaSqft: 4800, Amenities: []string{},
			Lat: 40.7101, Lng: -74.0090, OwnerName: "M. Okafor", OwnerPhone: "+1-555-0119",
			Images: []string{}, Description: "Zoned residential.", CreatedAt: now.Add(-30 * day)},
	}

	s.leads = []models.Lead{
		{ID: "l1", Name: "Maria Rodriguez", Email: "maria.rodriguez@example.com", Phone: "+1-555-0201",
			Source: models.SourceWebsite, Type: models.LeadBuyer, Tags: []string{"hot", "first-time"},
			Score: 85, Status: models.LeadNew, BudgetMin: 700000, BudgetMax: 1000000,
			Locations: []string{"Downtown", "Midtown"}, AssignedTo: "u2",
			LastContactedAt: now.Add(-2 * day), CreatedAt: now.Add(-5 * day)},
		{ID: "l2", Name: "James Okonkwo", Email: "james.okonkwo@example.com", Phone: "+1-555-0202",
			Source: models.SourceWhatsApp, Type: models.LeadBuyer, Tags: []string{"investor"},
			Score: 72, Status: models.LeadQualified, BudgetMin: 1500000, BudgetMax: 3000000,
			Locations: []string{"Waterfront"}, AssignedTo: "u2",
			LastContactedAt: now.Add(-1 * day), CreatedAt: now.Add(-12 * day)},
		{ID: "l3", Name: "Priya Sharma", Email: "priya.sharma@example.com", Phone: "+1-555-0203",
			Source: models.SourcePortal, Type: models.LeadTenant, Tags: []string{},
			Score: 44, Status: models.LeadVisitScheduled, BudgetMin: 2500, BudgetMax: 4000,
			Locations: []string{"Midtown"}, AssignedTo: "u3",
			LastContactedAt: now.Add(-3 * day), CreatedAt: now.Add(-9 * day)},
		{ID: "l4", Name: "Ahmed Hassan", Email: "ahmed.hassan@example.com", Phone: "+1-555-0204",
			Source: models.SourceReferral, Type: models.LeadSeller, Tags: []string{"exclusive"},
			Score: 91, Status: models.LeadNegotiation, BudgetMin: 0, BudgetMax: 0,
			Locations: []string{"Uptown"}, AssignedTo: "u3",
			LastContactedAt: now.Add(-6 * time.Hour), CreatedAt: now.Add(-20 * day)},
		{ID: "l5", Name: "Elena Petrova", Email: "elena.petrova@example.com", Phone: "+1-555-0205",
			Source: models.SourceManual, Type: models.LeadBuyer, Tags: []string{"relocation"},
			Score: 60, Status: models.LeadClosed, BudgetMin: 800000, BudgetMax: 1200000,
			Locations: []string{"Downtown"}, AssignedTo: "u2",
			LastContactedAt: now.Add(-15 * day), CreatedAt: now.Add(-45 * day)},
		{ID: "l6", Name: "Tom Becker", Email: "tom.becker@example.com", Phone: "+1-555-0206",
			Source: models.SourceWebsite, Type: models.LeadLandlord, Tags: []string{},
			Score: 25, Status: models.LeadLost, BudgetMin: 0, BudgetMax: 0,
			Locations: []string{"Midtown"}, AssignedTo: "u3",
			LastContactedAt: now.Add(-30 * day), CreatedAt: now.Add(-50 * day)},
	}

	s.clients = []models.Client{
		{ID: "c1", Name: "Elena Petrova", Email: "elena.petrova@example.com", Phone: "+1-555-0205",
			Preferences: models.ClientPreferences{
				PropertyTypes: []models.PropertyType{models.PropertyApartment},
				Locations:     []string{"Downtown"},
				BudgetMin:     800000, BudgetMax: 1200000,
				Amenities: []string{"Gym"},
			},
			SavedPropertyIDs: []string{"p1", "p5"}, LoyaltyPoints: 250, CreatedAt: now.Add(-40 * day)},
		{ID: "c2", Name: "Robert Kim", Email: "robert.kim@example.com", Phone: "+1-555-0207",
			Preferences: models.ClientPreferences{
				PropertyTypes: []models.PropertyType{models.PropertyVilla},
				Locations:     []string{"Uptown"},
				BudgetMin:     1500000, BudgetMax: 2000000,
			},
			// p404 dangles: the referenced property was removed upstream.
			SavedPropertyIDs: []string{"p2", "p404"}, LoyaltyPoints: 120, CreatedAt: now.Add(-35 * day)},
		{ID: "c3", Name: "Fatima Al-Sayed", Email: "fatima.alsayed@example.com", Phone: "+1-555-0208",
			Preferences: models.ClientPreferences{
				PropertyTypes: []models.PropertyType{models.PropertyCommercial},
				Locations:     []string{"Midtown"},
				BudgetMin:     1000000, BudgetMax: 1500000,
			},
			SavedPropertyIDs: []string{"p4"}, LoyaltyPoints: 0, CreatedAt: now.Add(-22 * day)},
		{ID: "c4", Name: "Lucas Ferreira", Email: "lucas.ferreira@example.com", Phone: "+1-555-0209",
			Preferences: models.ClientPreferences{
				PropertyTypes: []models.PropertyType{models.PropertyApartment, models.PropertyVilla},
				Locations:     []string{"Waterfront", "Downtown"},
				BudgetMin:     2000000, BudgetMax: 3000000,
			},
			SavedPropertyIDs: []string{"p3"}, LoyaltyPoints: 480, CreatedAt: now.Add(-18 * day)},
	}

	s.deals = []models.Deal{
		{ID: "d1", LeadID: "l1", PropertyID: "p1", Stage: models.StageInquiry, Value: 950000,
			AgentID: "u2", CreatedAt: now.Add(-4 * day), UpdatedAt: now.Add(-4 * day)},
		{ID: "d2", LeadID: "l2", PropertyID: "p3", Stage: models.StageQualified, Value: 2800000,
			AgentID: "u2", CreatedAt: now.Add(-11 * day), UpdatedAt: now.Add(-8 * day)},
		{ID: "d3", LeadID: "l3", PropertyID: "p5", Stage: models.StageVisit, Value: 820000,
			AgentID: "u3", CreatedAt: now.Add(-9 * day), UpdatedAt: now.Add(-2 * day)},
		{ID: "d4", LeadID: "l4", PropertyID: "p2", Stage: models.StageNegotiation, Value: 1750000,
			AgentID: "u3", CreatedAt: now.Add(-18 * day), UpdatedAt: now.Add(-1 * day)},
		{ID: "d5", LeadID: "l1", PropertyID: "p6", Stage: models.StageNegotiation, Value: 640000,
			AgentID: "u2", CreatedAt: now.Add(-3 * day), UpdatedAt: now.Add(-1 * day)},
		{ID: "d6", LeadID: "l5", PropertyID: "p1", Stage: models.StageLegal, Value: 930000,
			AgentID: "u2", CreatedAt: now.Add(-25 * day), UpdatedAt: now.Add(-5 * day)},
		{ID: "d7", LeadID: "l5", PropertyID: "p5", Stage: models.StageClosed, Value: 810000,
			AgentID: "u2", CreatedAt: now.Add(-44 * day), UpdatedAt: now.Add(-10 * day)},
		{ID: "d8", LeadID: "l2", PropertyID: "p4", Stage: models.StageClosed, Value: 1180000,
			AgentID: "u3", CreatedAt: now.Add(-38 * day), UpdatedAt: now.Add(-6 * day)},
	}

	s.tasks = []models.Task{
		{ID: "t1", Title: "Property viewing with Maria", Description: "Skyline Apartment 12B walkthrough",
			DueAt: now.Add(2 * time.Hour), RelatedType: models.RelatedProperty, RelatedID: "p1",
			AssigneeID: "u2", Category: models.CategoryVisit, Status: models.TaskOpen, CreatedAt: now.Add(-2 * day)},
		{ID: "t2", Title: "Call James about penthouse offer", Description: "Discuss counteroffer terms",
			DueAt: now.Add(5 * time.Hour), RelatedType: models.RelatedDeal, RelatedID: "d2",
			AssigneeID: "u2", Category: models.CategoryCall, Status: models.TaskOpen, CreatedAt: now.Add(-1 * day)},
		{ID: "t3", Title: "Legal review meeting", Description: "Contract draft for d6",
			DueAt: now.Add(1 * day), RelatedType: models.RelatedDeal, RelatedID: "d6",
			AssigneeID: "u3", Category: models.CategoryMeeting, Status: models.TaskOpen, CreatedAt: now.Add(-3 * day)},
		{ID: "t4", Title: "Follow up with Priya", Description: "Send Midtown rental shortlist",
			DueAt: now.Add(2 * day), RelatedType: models.RelatedLead, RelatedID: "l3",
			AssigneeID: "u3", Category: models.CategoryFollowUp, Status: models.TaskOpen, CreatedAt: now.Add(-1 * day)},
		{ID: "t5", Title: "Photograph corner plot", Description: "Drone shots for the listing",
			DueAt: now.Add(-1 * day), RelatedType: models.RelatedProperty, RelatedID: "p6",
			AssigneeID: "u2", Category: models.CategoryOther, Status: models.TaskDone, CreatedAt: now.Add(-4 * day)},
	}

	s.payments = []models.Payment{
		{ID: "pay1", ClientID: "c1", DealID: "d7", Amount: 81000, Method: models.MethodTransfer,
			Status: models.PaymentCompleted, Description: "10% booking deposit", CreatedAt: now.Add(-9 * day)},
		{ID: "pay2", ClientID: "c2", DealID: "d4", Amount: 25000, Method: models.MethodCard,
			Status: models.PaymentPending, Description: "Reservation fee", CreatedAt: now.Add(-2 * day)},
		{ID: "pay3", ClientID: "c3", DealID: "d8", Amount: 118000, Method: models.MethodTransfer,
			Status: models.PaymentCompleted, Description: "10% booking deposit", CreatedAt: now.Add(-5 * day)},
		{ID: "pay4", ClientID: "c4", DealID: "d2", Amount: 50000, Method: models.MethodCard,
			Status: models.PaymentFailed, Description: "Reservation fee retry", CreatedAt: now.Add(-1 * day)},
	}

	s.messages = []models.Message{
		{ID: "m1", Channel: models.ChannelEmail, Direction: models.DirectionOutbound, LeadID: "l1",
			Subject: "Downtown shortlist", Body: "Hi Maria, three options under budget attached.", SentAt: now.Add(-2 * day)},
		{ID: "m2", Channel: models.ChannelWhatsApp, Direction: models.DirectionInbound, LeadID: "l2",
			Subject: "", Body: "Can we view the penthouse this weekend?", SentAt: now.Add(-1 * day)},
		{ID: "m3", Channel: models.ChannelCall, Direction: models.DirectionOutbound, LeadID: "l4",
			Subject: "Negotiation call", Body: "Agreed to revise asking price.", SentAt: now.Add(-6 * time.Hour)},
		{ID: "m4", Channel: models.ChannelSMS, Direction: models.DirectionOutbound, LeadID: "l3",
			Subject: "", Body: "Reminder: viewing tomorrow 10am.", SentAt: now.Add(-3 * time.Hour)},
	}

	s.templates = []models.DocumentTemplate{
		{ID: "tpl1", Name: "Sale Agreement", Kind: models.KindAgreement, CreatedAt: now.Add(-120 * day),
			Body: "This agreement is made between {{client_name}} and the owner of {{property_title}} ({{property_location}}) for the amount of {{deal_value}}."},
		{ID: "tpl2", Name: "Offer Letter", Kind: models.KindOffer, CreatedAt: now.Add(-120 * day),
			Body: "{{client_name}} hereby offers {{deal_value}} for {{property_title}}."},
		{ID: "tpl3", Name: "Booking Invoice", Kind: models.KindInvoice, CreatedAt: now.Add(-100 * day),
			Body: "Invoice for {{client_name}}: booking deposit for {{property_title}}, total {{deal_value}}."},
	}

	return s
}
