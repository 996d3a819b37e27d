package synth

// Fixed vocabulary pools. Changing pool contents or order changes every
// generated file, so treat these as frozen.

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
}

// cities and states are parallel slices: states[i] is the state of cities[i].
// A city/state pair is always selected with a single index draw.
var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
	"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
	"Fort Worth", "Columbus", "Charlotte", "Seattle", "Denver", "Boston",
}

var states = []string{
	"NY", "CA", "IL", "TX", "AZ", "PA", "TX", "CA", "TX", "CA",
	"TX", "FL", "TX", "OH", "NC", "WA", "CO", "MA",
}

var emailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"hotmail.com",
	"company.com",
}

var productCategories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports", "Books", "Toys",
}

var productAdjectives = []string{
	"Premium", "Basic", "Pro", "Ultra", "Eco", "Smart", "Classic", "Modern",
}

var productNouns = []string{
	"Widget", "Gadget", "Device", "Tool", "Kit", "Set", "Pack", "Bundle",
}
