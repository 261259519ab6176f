package domain

type TestimonialStatus string

const (
	TestimonialStatusPending  TestimonialStatus = "pending"
	TestimonialStatusApproved TestimonialStatus = "approved"
)

type Testimonial struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	Comment   string            `json:"comment"`
	Rating    int32             `json:"rating"` // 1-5
	Status    TestimonialStatus `json:"status"`
	CreatedOn string            `json:"created_on"`
}
