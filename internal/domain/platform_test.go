package domain

import (
	"reflect"
	"testing"
)

func TestNewPlatformSet(t *testing.T) {
	got := NewPlatformSet("linkedin", "", "facebook", "linkedin")

	want := PlatformSet{"linkedin", "facebook"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewPlatformSet() = %v, want %v", got, want)
	}
}

func TestBusinessScheduleConfig_AutoPlatforms(t *testing.T) {
	eligible := NewPlatformSet("linkedin", "facebook")

	tests := []struct {
		name   string
		config BusinessScheduleConfig
		want   PlatformSet
	}{
		{
			name:   "auto posting disabled",
			config: BusinessScheduleConfig{IsAutoPosting: false, ConnectedPlatforms: NewPlatformSet("linkedin")},
			want:   PlatformSet{},
		},
		{
			name:   "connected eligible platform",
			config: BusinessScheduleConfig{IsAutoPosting: true, ConnectedPlatforms: NewPlatformSet("instagram", "linkedin")},
			want:   PlatformSet{"linkedin"},
		},
		{
			name:   "keeps eligible order",
			config: BusinessScheduleConfig{IsAutoPosting: true, ConnectedPlatforms: NewPlatformSet("facebook", "linkedin")},
			want:   PlatformSet{"linkedin", "facebook"},
		},
		{
			name:   "nothing connected",
			config: BusinessScheduleConfig{IsAutoPosting: true},
			want:   PlatformSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.AutoPlatforms(eligible)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AutoPlatforms() = %v, want %v", got, tt.want)
			}
		})
	}
}
