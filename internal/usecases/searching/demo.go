package searching

import "github.com/vfg2006/influencer-match-api/internal/domain"

// demoChannels é usado quando a busca de canais não está configurada ou falha
var demoChannels = []domain.ChannelCandidate{
	{
		ExternalID:   "UC_x5XG1OV2P6uZZ5FSM9Ttw",
		Title:        "Tech Reviewer Pro",
		Description:  "Professional tech reviews and gadget unboxings",
		ThumbnailURL: "https://via.placeholder.com/88x88/3B82F6/FFFFFF?text=TR",
	},
	{
		ExternalID:   "UCBJycsmduvYEL83R_U4JriQ",
		Title:        "Gadget Guru",
		Description:  "Latest tech news, reviews, and tutorials",
		ThumbnailURL: "https://via.placeholder.com/88x88/10B981/FFFFFF?text=GG",
	},
	{
		ExternalID:   "UCuAXFkgsw1L7xaCfnd5JJOw",
		Title:        "Tech Unboxed",
		Description:  "Unboxing and reviewing the latest technology products",
		ThumbnailURL: "https://via.placeholder.com/88x88/F59E0B/FFFFFF?text=TU",
	},
	{
		ExternalID:   "UCXuqSBlHAE6Xw-yeJA0Tunw",
		Title:        "Electronics Expert",
		Description:  "In-depth electronics reviews and comparisons",
		ThumbnailURL: "https://via.placeholder.com/88x88/EF4444/FFFFFF?text=EE",
	},
	{
		ExternalID:   "UCsTcErHg8oDvUnTzoqsYeNw",
		Title:        "Tech Lifestyle",
		Description:  "How technology integrates into daily life",
		ThumbnailURL: "https://via.placeholder.com/88x88/8B5CF6/FFFFFF?text=TL",
	},
}

func demoCandidates(maxResults int) []domain.ChannelCandidate {
	if maxResults > len(demoChannels) {
		maxResults = len(demoChannels)
	}
	out := make([]domain.ChannelCandidate, maxResults)
	copy(out, demoChannels[:maxResults])
	return out
}
