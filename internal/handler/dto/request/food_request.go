package request

// Required fields are checked by the request command so that every missing
// field produces the same "Missing required fields" answer.
type CreateFoodRequestRequest struct {
	FoodID   string `json:"foodId" example:"6f1c2d9e-6c1a-4b7e-9d55-3a2b8f1e0c11"`
	Location string `json:"location" example:"Mirpur 10, Dhaka"`
	Reason   string `json:"reason" example:"Family of five"`
	Contact  string `json:"contact" example:"+8801700000000"`
}
