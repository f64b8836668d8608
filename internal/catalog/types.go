package catalog

// RoomListResponse lists the room categories in display order.
type RoomListResponse struct {
	Rooms []string `json:"rooms"`
}

// RoomItemsResponse lists the item definitions for one room category.
type RoomItemsResponse struct {
	Room  string           `json:"room"`
	Items []ItemDefinition `json:"items"`
}
