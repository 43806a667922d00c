package domain

const (
	CollectionWordCloudEntries = "word_cloud_entries"
)
