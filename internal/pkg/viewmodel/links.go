package viewmodel

import "fmt"

const basePath = "/api/v1"

// Links carries the self URL plus related-resource URLs for a response body.
type Links map[string]string

func authorLinks(id uint64) Links {
	return Links{
		"self": fmt.Sprintf("%s/authors/%d", basePath, id),
	}
}

func tagLinks(id uint64) Links {
	return Links{
		"self": fmt.Sprintf("%s/tags/%d", basePath, id),
	}
}

func commentLinks(id, newsID uint64) Links {
	return Links{
		"self": fmt.Sprintf("%s/comments/%d", basePath, id),
		"news": fmt.Sprintf("%s/news/%d", basePath, newsID),
	}
}

func newsLinks(id uint64) Links {
	return Links{
		"self":     fmt.Sprintf("%s/news/%d", basePath, id),
		"author":   fmt.Sprintf("%s/news/%d/author", basePath, id),
		"tags":     fmt.Sprintf("%s/news/%d/tags", basePath, id),
		"comments": fmt.Sprintf("%s/news/%d/comments", basePath, id),
	}
}
