package model

const (
	EntityName = "room"
)

// Room is a static bookable unit. Its attributes never change and are
// independent of any reservation state.
type Room struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	AirConditioned bool   `json:"air_conditioned"`
	Price          int    `json:"price"`
	Capacity       int    `json:"capacity"`
}

// catalog is the fixed set of twelve rooms. It is the single definition of
// the catalog; clients fetch it over the API and treat it as read-only.
var catalog = [...]Room{
	{ID: 1, Name: "Aster", Category: "single", AirConditioned: false, Price: 390, Capacity: 1},
	{ID: 2, Name: "Bluebell", Category: "single", AirConditioned: true, Price: 450, Capacity: 1},
	{ID: 3, Name: "Clover", Category: "double", AirConditioned: false, Price: 520, Capacity: 2},
	{ID: 4, Name: "Dahlia", Category: "double", AirConditioned: true, Price: 580, Capacity: 2},
	{ID: 5, Name: "Edelweiss", Category: "double", AirConditioned: true, Price: 610, Capacity: 2},
	{ID: 6, Name: "Foxglove", Category: "twin", AirConditioned: false, Price: 540, Capacity: 2},
	{ID: 7, Name: "Gardenia", Category: "twin", AirConditioned: true, Price: 600, Capacity: 2},
	{ID: 8, Name: "Heather", Category: "triple", AirConditioned: false, Price: 700, Capacity: 3},
	{ID: 9, Name: "Iris", Category: "triple", AirConditioned: true, Price: 760, Capacity: 3},
	{ID: 10, Name: "Jasmine", Category: "family", AirConditioned: true, Price: 880, Capacity: 4},
	{ID: 11, Name: "Kalmia", Category: "suite", AirConditioned: true, Price: 1150, Capacity: 4},
	{ID: 12, Name: "Lavender", Category: "suite", AirConditioned: true, Price: 1290, Capacity: 5},
}

// Catalog returns a copy of the fixed room list.
func Catalog() []Room {
	rooms := make([]Room, len(catalog))
	copy(rooms, catalog[:])

	return rooms
}

// ByID returns the room with the given id, or false when no such room exists.
func ByID(id int) (Room, bool) {
	for _, room := range catalog {
		if room.ID == id {
			return room, true
		}
	}

	return Room{}, false
}
