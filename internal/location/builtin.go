package location

// Place is one entry of the built-in ZIP table.
type Place struct {
	Zip   string `json:"zip"`
	City  string `json:"city"`
	State string `json:"state"`
}

// Label returns the display form "City, ST".
func (p Place) Label() string {
	return p.City + ", " + p.State
}

// builtinPlaces covers the metro areas the brokerage sees most. Anything
// else goes through the external lookup.
var builtinPlaces = []Place{
	{Zip: "10001", City: "New York", State: "NY"},
	{Zip: "90011", City: "Los Angeles", State: "CA"},
	{Zip: "60601", City: "Chicago", State: "IL"},
	{Zip: "77001", City: "Houston", State: "TX"},
	{Zip: "85001", City: "Phoenix", State: "AZ"},
	{Zip: "19102", City: "Philadelphia", State: "PA"},
	{Zip: "78201", City: "San Antonio", State: "TX"},
	{Zip: "92101", City: "San Diego", State: "CA"},
	{Zip: "75201", City: "Dallas", State: "TX"},
	{Zip: "95101", City: "San Jose", State: "CA"},
	{Zip: "78701", City: "Austin", State: "TX"},
	{Zip: "32099", City: "Jacksonville", State: "FL"},
	{Zip: "94102", City: "San Francisco", State: "CA"},
	{Zip: "43004", City: "Columbus", State: "OH"},
	{Zip: "46201", City: "Indianapolis", State: "IN"},
	{Zip: "98101", City: "Seattle", State: "WA"},
	{Zip: "80201", City: "Denver", State: "CO"},
	{Zip: "20001", City: "Washington", State: "DC"},
	{Zip: "02108", City: "Boston", State: "MA"},
	{Zip: "37201", City: "Nashville", State: "TN"},
	{Zip: "89101", City: "Las Vegas", State: "NV"},
	{Zip: "97201", City: "Portland", State: "OR"},
	{Zip: "33101", City: "Miami", State: "FL"},
	{Zip: "30301", City: "Atlanta", State: "GA"},
	{Zip: "28201", City: "Charlotte", State: "NC"},
	{Zip: "63101", City: "St. Louis", State: "MO"},
}

var builtinByZip = func() map[string]Place {
	index := make(map[string]Place, len(builtinPlaces))
	for _, place := range builtinPlaces {
		index[place.Zip] = place
	}
	return index
}()
