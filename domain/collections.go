package domain

const (
	CollectionUser = "system_auth_users"
)

const (
	CollectionMovie = "movie_entity_catalog_movie"
)
