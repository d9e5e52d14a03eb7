package domain

import "fmt"

// GoogleAd is a Google responsive search ad variation.
type GoogleAd struct {
	Headline1    string `json:"headline1"`
	Headline2    string `json:"headline2"`
	Headline3    string `json:"headline3"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
}

func (a GoogleAd) Complete() bool {
	return a.Headline1 != "" && a.Headline2 != "" && a.Headline3 != "" &&
		a.Description1 != "" && a.Description2 != ""
}

// MetaAd is a Meta (Facebook/Instagram) feed ad variation.
type MetaAd struct {
	Headline    string `json:"headline"`
	PrimaryText string `json:"primary_text"`
	Description string `json:"description"`
	ImagePrompt string `json:"image_prompt"`
}

func (a MetaAd) Complete() bool {
	return a.Headline != "" && a.PrimaryText != "" && a.Description != "" && a.ImagePrompt != ""
}

// LinkedInAd is a LinkedIn sponsored content variation.
type LinkedInAd struct {
	Headline    string `json:"headline"`
	IntroText   string `json:"intro_text"`
	Description string `json:"description"`
}

func (a LinkedInAd) Complete() bool {
	return a.Headline != "" && a.IntroText != "" && a.Description != ""
}

// MicrosoftAd is a Microsoft Advertising text ad variation.
type MicrosoftAd struct {
	Headline1    string `json:"headline1"`
	Headline2    string `json:"headline2"`
	Headline3    string `json:"headline3"`
	Description1 string `json:"description1"`
	Description2 string `json:"description2"`
}

func (a MicrosoftAd) Complete() bool {
	return a.Headline1 != "" && a.Headline2 != "" && a.Headline3 != "" &&
		a.Description1 != "" && a.Description2 != ""
}

// GeneratedAdSet holds the generated variations for one platform. Only the
// slice matching Platform is populated; ImageURL is set for image kinds.
type GeneratedAdSet struct {
	Platform   Platform      `json:"platform"`
	Google     []GoogleAd    `json:"google,omitempty"`
	Meta       []MetaAd      `json:"meta,omitempty"`
	LinkedIn   []LinkedInAd  `json:"linkedin,omitempty"`
	Microsoft  []MicrosoftAd `json:"microsoft,omitempty"`
	ImageURL   string        `json:"image_url,omitempty"`
	IsComplete bool          `json:"is_complete"`
}

// Validate checks that the set carries at least one variation for its
// platform and that every variation has all required fields filled. On
// success it marks the set complete.
func (s *GeneratedAdSet) Validate() error {
	switch s.Platform {
	case PlatformGoogle:
		if len(s.Google) == 0 {
			return fmt.Errorf("no google ads generated")
		}
		for i, ad := range s.Google {
			if !ad.Complete() {
				return fmt.Errorf("google ad %d has empty required fields", i)
			}
		}
	case PlatformMeta:
		if len(s.Meta) == 0 {
			return fmt.Errorf("no meta ads generated")
		}
		for i, ad := range s.Meta {
			if !ad.Complete() {
				return fmt.Errorf("meta ad %d has empty required fields", i)
			}
		}
	case PlatformLinkedIn:
		if len(s.LinkedIn) == 0 {
			return fmt.Errorf("no linkedin ads generated")
		}
		for i, ad := range s.LinkedIn {
			if !ad.Complete() {
				return fmt.Errorf("linkedin ad %d has empty required fields", i)
			}
		}
	case PlatformMicrosoft:
		if len(s.Microsoft) == 0 {
			return fmt.Errorf("no microsoft ads generated")
		}
		for i, ad := range s.Microsoft {
			if !ad.Complete() {
				return fmt.Errorf("microsoft ad %d has empty required fields", i)
			}
		}
	default:
		return fmt.Errorf("unknown platform: %s", s.Platform)
	}

	s.IsComplete = true
	return nil
}
