package staffdirectory

// Staff модель сотрудника из StaffDirectory
type Staff struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	SkillTier *string `json:"skill_tier,omitempty"` // Разряд мастера (junior, senior, top)
	IsActive  bool    `json:"is_active"`
}

// staffListResponse модель ответа со списком сотрудников
type staffListResponse struct {
	Staff []*Staff `json:"staff"`
}

// ErrorResponse модель ошибки от StaffDirectory
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
