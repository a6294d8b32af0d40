package api

// AvatarRequest представляет запрос на создание/обновление аватара
// Токен передается в теле запроса, а не в заголовке Authorization
type AvatarRequest struct {
	Token       string `json:"token"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
}

// AvatarResponse представляет сохраненный аватар
type AvatarResponse struct {
	Name        string `json:"name"`
	Personality string `json:"personality"`
}
