package domain

// ImageBriefArgs is the structured argument payload of the generate_ad_image
// tool call produced in the first phase of image generation.
type ImageBriefArgs struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
	Style  string `json:"style,omitempty"`
}

type ImageGenerationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type ImageData struct {
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type ImageGenerationResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}
