// Package queries holds the GROQ templates the content service sends to the
// document store. Projections dereference assets so image references arrive with
// their DAM record and nested storage asset.
package queries

import (
	ports "golf-content-service/internal/core/ports/output"
)

// Template is a named, parameterized GROQ query.
type Template struct {
	Name string
	GROQ string
}

// Bind attaches parameters to the template.
func (t Template) Bind(params map[string]any) ports.Query {
	return ports.Query{Name: t.Name, GROQ: t.GROQ, Params: params}
}

const imageAssetProjection = `asset-> {
      _id,
      title,
      credit,
      defaultCaption,
      defaultAlt,
      image {
        asset-> {
          _id,
          url,
          metadata {
            dimensions
          }
        }
      }
    }`

// imageRefProjection resolves an imageReference field.
const imageRefProjection = `{
    customCaption,
    customAlt,
    displayOptions,
    ` + imageAssetProjection + `
  }`

// listingImageProjection skips asset metadata for lighter listings.
const listingImageProjection = `{
    customCaption,
    customAlt,
    displayOptions,
    asset-> {
      _id,
      title,
      credit,
      defaultCaption,
      defaultAlt,
      image
    }
  }`

const heroOnlyProjection = `{
    asset-> {
      _id,
      title,
      credit,
      image {
        asset-> { _id, url }
      }
    }
  }`

var Article = Template{
	Name: "article",
	GROQ: `*[_type == "article" && slug.current == $slug][0] {
  _id,
  title,
  subtitle,
  slug,
  category,
  location,
  publishedAt,
  excerpt,
  featured,
  status,
  author-> { _id, name, slug, bio, image },
  authors[] { role, order, author-> { _id, name, slug, bio, image } },
  leadImage ` + imageRefProjection + `,
  toutImage ` + imageRefProjection + `,
  socialImage ` + imageRefProjection + `,
  body[] {
    _type == "imageReference" => {
      _type,
      _key,
      customCaption,
      customAlt,
      displayOptions,
      ` + imageAssetProjection + `
    },
    _type == "externalVideoReference" => {
      _type,
      _key,
      displayMode,
      video-> { _id, title, slug, platform, videoId, playerId, thumbnail, duration }
    },
    _type == "nativeVideoReference" => {
      _type,
      _key,
      customCaption,
      autoplay,
      loop,
      controls,
      displayOptions,
      asset-> { _id, title, videoFile, thumbnail, credit, defaultCaption, duration, aspectRatio }
    },
    _type == "block" => @,
    _type == "quote" => @
  },
  tags[]-> { _id, name, slug },
  relatedPlayers[]-> { _id, name, slug, tour, country },
  relatedTournaments[]-> { _id, name, slug, year, location },
  seo { metaTitle, metaDescription }
}`,
}

var Articles = Template{
	Name: "articles",
	GROQ: `*[_type == "article" && status == "published"] | order(publishedAt desc) [0...$limit] {
  _id,
  title,
  subtitle,
  slug,
  category,
  publishedAt,
  excerpt,
  featured,
  author-> { name, slug },
  authors[] { role, order, author-> { name, slug } },
  "thumbnail": coalesce(toutImage ` + listingImageProjection + `, leadImage ` + listingImageProjection + `),
  tags[]-> { name, slug }
}`,
}

var FeaturedArticles = Template{
	Name: "featured_articles",
	GROQ: `*[_type == "article" && status == "published" && featured == true] | order(publishedAt desc) [0...$limit] {
  _id,
  title,
  subtitle,
  slug,
  category,
  publishedAt,
  excerpt,
  author-> { name, slug },
  authors[] { role, order, author-> { name, slug } },
  leadImage ` + listingImageProjection + `,
  toutImage ` + listingImageProjection + `
}`,
}

const clubProjection = `{
  _id,
  name,
  slug,
  clubType,
  clubSubType,
  variant,
  brand-> { _id, name, slug, logo, website, description, specialties },
  performanceRating,
  awards,
  targetHandicaps,
  whyWeLikeIt,
  specifications,
  heroImage ` + imageRefProjection + `,
  productImages {
    toeView ` + imageRefProjection + `,
    addressView ` + imageRefProjection + `
  },
  price,
  hotListScore,
  buyNowUrl,
  featured,
  order
}`

var Club = Template{
	Name: "club",
	GROQ: `*[_type == "club" && slug.current == $slug][0] ` + clubProjection,
}

var BuyingGuide = Template{
	Name: "buying_guide",
	GROQ: `*[_type == "buyingGuide" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  category,
  clubType,
  contentType,
  introduction,
  evaluationCriteria,
  publishedAt,
  year,
  clubs[]-> ` + clubProjection + `
}`,
}

var Brand = Template{
	Name: "brand",
	GROQ: `*[_type == "brand" && slug.current == $slug][0] {
  _id,
  name,
  slug,
  logo,
  website,
  description,
  specialties,
  "clubs": *[_type == "club" && references(^._id)] | order(order asc, name asc) {
    _id,
    name,
    slug,
    clubType,
    clubSubType,
    heroImage ` + heroOnlyProjection + `,
    price,
    awards,
    order
  }
}`,
}

var FeaturedClubs = Template{
	Name: "featured_clubs",
	GROQ: `*[_type == "club" && featured == true] | order(order asc, name asc) [0...$limit] {
  _id,
  name,
  slug,
  clubType,
  brand-> { name, slug },
  heroImage ` + heroOnlyProjection + `,
  price,
  awards,
  order
}`,
}

var HotListGold = Template{
	Name: "hot_list_gold",
	GROQ: `*[_type == "club" && hotListScore.award == "gold"] | order(hotListScore.hotListScore desc) {
  _id,
  name,
  slug,
  clubType,
  brand-> { name, slug },
  heroImage ` + heroOnlyProjection + `,
  hotListScore,
  price
}`,
}

var ExternalVideo = Template{
	Name: "external_video",
	GROQ: `*[_type == "externalVideo" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  platform,
  videoId,
  playerId,
  description,
  thumbnail,
  duration,
  publishedAt,
  category,
  transcript,
  status
}`,
}

// All lists every template, for logging and metric label validation.
var All = []Template{
	Article, Articles, FeaturedArticles,
	Club, BuyingGuide, Brand, FeaturedClubs, HotListGold,
	ExternalVideo,
}
