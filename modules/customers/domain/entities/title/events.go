package title

func NewCreatedEvent(data CreateDTO, result Title) *CreatedEvent {
	return &CreatedEvent{Data: data, Result: result}
}

func NewUpdatedEvent(data UpdateDTO, result Title) *UpdatedEvent {
	return &UpdatedEvent{Data: data, Result: result}
}

func NewDeletedEvent(result Title) *DeletedEvent {
	return &DeletedEvent{Result: result}
}

type CreatedEvent struct {
	Data   CreateDTO
	Result Title
}

type UpdatedEvent struct {
	Data   UpdateDTO
	Result Title
}

type DeletedEvent struct {
	Result Title
}
